// Package users implements the user directory: lookup and mutation of
// user records kept as one JSON array inside the persisted store.
package users

import (
	"context"

	"github.com/okataev/deardiary/internal/models"
)

// Directory describes the operations the rest of the application needs
// from the user record list.
type Directory interface {
	// FindByUsername matches name case-insensitively against all stored
	// usernames. Absence is not an error: it returns (nil, nil) so callers
	// branch on the record being nil.
	FindByUsername(ctx context.Context, name string) (*models.User, error)

	// Register appends a new record with an empty entry list. It fails
	// with common.ErrDuplicateUser when the username is already taken
	// under case-insensitive comparison.
	Register(ctx context.Context, username, password, fullName string) error

	// UpdatePassword overwrites the password of an existing user, or
	// fails with common.ErrUserNotFound.
	UpdatePassword(ctx context.Context, username, newPassword string) error

	// UpsertEntries replaces the entry list of the user with the exact
	// given username and persists the full directory. It fails with
	// common.ErrUserNotFound when the user has vanished from the store.
	UpsertEntries(ctx context.Context, username string, entries []models.Entry) error
}
