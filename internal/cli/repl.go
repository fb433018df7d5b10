package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Logout(ctx context.Context) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	CancelEdit(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Search(ctx context.Context, query string) error
	Export(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the diary CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - forgot          — reset a password
//	  - theme           — toggle the dark theme
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - save            — write a new entry, or commit a pending edit
//	  - (l)ist          — show all entries
//	  - edit <n>        — start editing the entry at row n
//	  - cancel          — abandon a pending edit
//	  - delete <n>      — delete the entry at row n (asks to confirm)
//	  - search [text]   — filter entries; no text clears the filter
//	  - export          — write the diary to a text file
//	  - theme           — toggle the dark theme
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("diary %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: save, (l)ist, edit <n>, cancel, delete <n>, search [text], export, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "save":
			_ = a.Save(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <n>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "cancel":
			_ = a.CancelEdit(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <n>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "search")))

		case "export":
			_ = a.Export(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
