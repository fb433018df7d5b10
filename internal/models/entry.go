package models

import (
	"strings"

	"github.com/google/uuid"
)

// UntitledLabel is the title shown for entries saved without one.
const UntitledLabel = "Untitled"

// Entry is one diary record. Dates are stored in display form rather than
// as sortable timestamps; ordering comes from position in the owning
// user's entry list, never from the date field.
//
// ID is a stable identifier assigned at creation. Edit and delete
// operations target entries by ID, so a row rendered from a stale
// projection can never act on the wrong entry.
type Entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Mood  string `json:"mood"`
	Date  string `json:"date"`
}

// NewEntryID returns a fresh identifier for a new entry.
func NewEntryID() string {
	return uuid.NewString()
}

// DisplayTitle returns the title to render, substituting UntitledLabel
// for a blank title.
func (e Entry) DisplayTitle() string {
	if strings.TrimSpace(e.Title) == "" {
		return UntitledLabel
	}
	return e.Title
}

// Matches reports whether q is a case-insensitive substring of the
// entry's title or text. An empty query matches everything.
func (e Entry) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Text), q)
}
