// Package common defines shared sentinel errors used across the diary
// application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Entry validation errors.
	ErrEmptyText = errors.New("entry text is empty")

	// User directory errors.
	ErrDuplicateUser = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")

	// Authentication errors.
	ErrWrongPassword    = errors.New("incorrect password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingFields    = errors.New("required fields are missing")

	// Session errors.
	ErrNoSession = errors.New("no active session")

	// Export errors.
	ErrNothingToExport = errors.New("no entries to export")
)
