package config

import (
	"flag"
	"os"

	"github.com/okataev/deardiary/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file
//	-e string   directory for diary exports
//
// The function filters os.Args to include only the flags it knows about,
// using flagx.FilterArgs, so it does not interfere with the config-file
// flags parsed elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the diary database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for diary exports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
