package cli

import (
	"context"
	"strconv"

	"github.com/okataev/deardiary/internal/view"
)

// getMultiline and confirmFn are test seams like getSimpleText above.
var getMultiline = GetMultiline
var confirmFn = Confirm

// requireLogin guards the entry commands. The REPL help hides them while
// logged out, but commands can still be typed.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first.")
	return false
}

// Save collects the entry form fields and saves: a new entry when the
// form is idle, a commit of the pending edit otherwise. While editing,
// leaving a field blank keeps the current value, standing in for the
// prefilled form of a graphical UI.
func (a *App) Save(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	editing := a.diary.Editing()

	title, err := getSimpleText(a.reader, "Enter title (optional)", a.out)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Enter entry text (double Enter to finish):", a.out)
	if err != nil {
		return err
	}
	mood, err := getSimpleText(a.reader, "Enter mood (e.g. happy, sad, neutral)", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Enter date YYYY-MM-DD (blank for now)", a.out)
	if err != nil {
		return err
	}

	if editing && a.draft != nil {
		if title == "" {
			title = a.draft.Title
		}
		if text == "" {
			text = a.draft.Text
		}
		if mood == "" {
			mood = a.draft.Mood
		}
		if date == "" {
			date = a.draft.Date
		}
	}
	if mood == "" {
		mood = "neutral"
	}

	created, err := a.diary.Save(ctx, title, text, mood, date)
	if err != nil {
		a.report(ctx, "save failed", err)
		return err
	}

	a.draft = nil
	if created {
		printlnFn("Entry saved!")
	} else {
		printlnFn("Entry updated!")
	}
	a.render()
	return nil
}

// List clears any search filter and redraws the full collection.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.filter = ""
	a.render()
	return nil
}

// Edit starts editing the entry at the given row number of the last
// rendered list. The commit happens on the next save.
func (a *App) Edit(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	id, ok := a.resolveRow(arg)
	if !ok {
		return nil
	}

	draft, ok := a.diary.StartEdit(id)
	if !ok {
		printlnFn("No such entry.")
		return nil
	}
	a.draft = &draft

	printlnFn("Editing entry:")
	printlnFn("  title: " + draft.Title)
	printlnFn("  text:  " + draft.Text)
	printlnFn("  mood:  " + draft.Mood)
	printlnFn("  date:  " + draft.Date)
	printlnFn("Run 'save' to update it (blank fields keep current values), or 'cancel'.")
	return nil
}

// CancelEdit abandons a pending edit without mutating anything.
func (a *App) CancelEdit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.diary.CancelEdit()
	a.draft = nil
	printlnFn("Edit cancelled.")
	return nil
}

// Delete removes the entry at the given row number after an explicit
// yes/no confirmation. Declining leaves everything untouched.
func (a *App) Delete(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	id, ok := a.resolveRow(arg)
	if !ok {
		return nil
	}

	deleted, err := a.diary.Delete(ctx, id, func() bool {
		return confirmFn(a.reader, "Delete this entry?", a.out)
	})
	if err != nil {
		a.report(ctx, "delete failed", err)
		return err
	}
	if deleted {
		printlnFn("Entry deleted.")
		a.render()
	}
	return nil
}

// Search filters the rendered list to entries whose title or text
// contains the query. An empty query shows everything again.
func (a *App) Search(ctx context.Context, query string) error {
	if !a.requireLogin() {
		return nil
	}
	a.filter = query
	a.render()
	return nil
}

// Export writes the full diary to a text file in the configured export
// directory.
func (a *App) Export(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	blob, filename, err := a.diary.Export()
	if err != nil {
		a.report(ctx, "export failed", err)
		return err
	}

	path, err := a.delivery.Deliver(blob, filename)
	if err != nil {
		a.report(ctx, "export failed", err)
		return err
	}

	printlnFn("Diary exported to " + path)
	return nil
}

// Theme toggles the dark theme flag and switches the renderer palette.
// Works logged in or out, like the original toggle.
func (a *App) Theme(ctx context.Context) error {
	dark, err := a.settings.ToggleTheme(ctx)
	if err != nil {
		a.report(ctx, "theme toggle failed", err)
		return err
	}
	a.renderer.SetDark(dark)
	if dark {
		printlnFn("Dark theme on.")
	} else {
		printlnFn("Dark theme off.")
	}
	return nil
}

// resolveRow turns a typed row number into the stable id of the entry
// behind that row of the last rendered projection.
func (a *App) resolveRow(arg string) (string, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Expected a row number, got: " + arg)
		return "", false
	}
	id, ok := view.EntryID(a.lastRows, n)
	if !ok {
		printlnFn("No entry at row " + arg + ".")
		return "", false
	}
	return id, true
}
