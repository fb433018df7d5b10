package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/config"
	diarypkg "github.com/okataev/deardiary/internal/diary"
	"github.com/okataev/deardiary/internal/export"
	"github.com/okataev/deardiary/internal/logging"
	"github.com/okataev/deardiary/internal/models"
	"github.com/okataev/deardiary/internal/repositories/kv"
	"github.com/okataev/deardiary/internal/repositories/users"
	"github.com/okataev/deardiary/internal/services"
	"github.com/okataev/deardiary/internal/view"
)

// App wires the diary CLI together: the persisted store, the user
// directory, the auth and diary services, the renderer and the export
// delivery. One App serves one interactive session.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     services.AuthService
	settings services.SettingsService
	dir      users.Directory
	delivery export.Delivery
	renderer *view.TerminalRenderer

	// Session-scoped state; nil/empty while logged out.
	diary services.DiaryService
	user  *models.User

	// draft holds the field values of a pending edit so blank form
	// answers can fall back to them.
	draft *diarypkg.Draft

	// lastRows is the last rendered projection. Row numbers typed by the
	// user resolve against it, yielding stable entry ids.
	lastRows []view.Row
	filter   string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the persisted store at the configured path and builds the
// application. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := kv.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open diary database", "path", c.DatabasePath, "err", err)
		return nil, err
	}

	store := kv.NewSQLiteRepository(db)
	dir := users.NewKVDirectory(db)
	settings := services.NewSettingsService(store)

	dark, err := settings.DarkTheme(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   c,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(dir, store),
		settings: settings,
		dir:      dir,
		delivery: export.NewFileDelivery(c.ExportDir),
		renderer: view.NewTerminalRenderer(os.Stdout, dark),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.diary != nil
}

// startSession binds the session-scoped state to user and draws the diary.
func (a *App) startSession(user *models.User) {
	a.user = user
	a.diary = services.NewDiaryService(user, a.dir)
	a.filter = ""
	a.draft = nil
	printlnFn("Welcome, " + user.DisplayName() + "!")
	a.render()
}

// endSession drops the session-scoped state.
func (a *App) endSession() {
	a.user = nil
	a.diary = nil
	a.filter = ""
	a.lastRows = nil
	a.draft = nil
}

// render recomputes the row projection from the current (possibly
// filtered) collection and redraws it. Mutating commands call it after
// their flush has completed.
func (a *App) render() {
	rows := view.Project(a.diary.Search(a.filter))
	a.renderer.Render(rows)
	a.lastRows = rows
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.user.Username
	if a.diary.Editing() {
		s += " editing"
	}
	return "(" + s + ") "
}

// Run resumes a persisted session, if any, and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	sess, err := a.auth.Resume(ctx)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		// The persisted session points nowhere; drop it and fall through
		// to the login prompt instead of crashing.
		a.log.Warn(ctx, "stale session", "err", err)
		_ = a.auth.Logout(ctx)
	case err != nil:
		a.log.Warn(ctx, "could not resume session", "err", err)
	case sess != nil:
		user, err := a.auth.Current(ctx)
		if err != nil {
			a.log.Warn(ctx, "could not resume session", "user", sess.Username, "err", err)
		} else {
			a.startSession(user)
		}
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
