// Package view contains the read-only projection from an entry list to
// renderable rows, plus a terminal renderer for them.
package view

import "github.com/okataev/deardiary/internal/models"

// Row is the renderable form of one entry. Index is the position within
// the list the row was projected from; ID is the stable identifier backing
// the row's edit and delete actions. Placeholder rows carry no actions.
type Row struct {
	ID          string
	Index       int
	Title       string
	Text        string
	Date        string
	Mood        string
	Placeholder bool
}

// Project maps entries to rows. It is pure and always recomputes the full
// row set from scratch: indices shift under insert and delete, so rows
// from a previous projection are never patched. An empty list projects to
// a single "no entries" placeholder row.
func Project(entries []models.Entry) []Row {
	if len(entries) == 0 {
		return []Row{{Title: "No entries yet.", Placeholder: true}}
	}

	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			ID:    e.ID,
			Index: i,
			Title: e.DisplayTitle(),
			Text:  e.Text,
			Date:  e.Date,
			Mood:  e.Mood,
		}
	}
	return rows
}

// EntryID resolves a 1-based row number from the last rendered projection
// to the stable entry id behind it. ok is false for placeholder rows and
// out-of-range numbers.
func EntryID(rows []Row, number int) (string, bool) {
	i := number - 1
	if i < 0 || i >= len(rows) || rows[i].Placeholder {
		return "", false
	}
	return rows[i].ID, true
}
