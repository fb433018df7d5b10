// Package cli implements the interactive terminal front end of the
// diary: the REPL, the input helpers, and the command handlers that drive
// the application services.
package cli
