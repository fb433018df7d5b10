// Package kv implements the persisted store: a flat key-value table in a
// local SQLite database. It is the durability layer everything else sits
// on; the user directory, the session pointer, and the theme flag each
// live under a single well-known key.
package kv

import "context"

// Repository describes the key-value operations the persisted store
// supports. Get reports ok=false for an absent key instead of an error,
// mirroring how callers branch on presence rather than failure.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known store keys. The values kept under them:
//
//	KeyUsers   — JSON-serialized array of user records
//	KeyCurrent — username of the active session, absent when logged out
//	KeyTheme   — "1" when the dark theme is on, "0" or absent otherwise
const (
	KeyUsers   = "diary_users"
	KeyCurrent = "diary_current"
	KeyTheme   = "diary_theme_dark"
)
