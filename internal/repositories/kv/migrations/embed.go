// Package migrations embeds the SQL migrations for the persisted store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
