// Package diary implements the entry collection: the ordered, mutable
// list of one user's entries held in memory during a session, together
// with the entry-form state machine.
package diary

import (
	"github.com/okataev/deardiary/internal/datex"
	"github.com/okataev/deardiary/internal/models"
)

// Draft carries the editable field values of an entry whose edit has been
// started. Date is converted to the YYYY-MM-DD form the entry form accepts.
type Draft struct {
	Title string
	Text  string
	Mood  string
	Date  string
}

// Collection is the in-memory working copy of a user's entries. Ordering
// is significant and caller-visible: new entries go to the head, edits
// keep their position, removals shift later entries down by one. No sort
// is ever applied.
//
// The embedded form state machine has two states, Idle and Editing(id).
// StartEdit moves Idle -> Editing, CommitEdit and CancelEdit move back.
// Creating an entry is only possible in Idle.
type Collection struct {
	entries []models.Entry
	editID  string
}

// NewCollection builds a collection over a copy of entries.
func NewCollection(entries []models.Entry) *Collection {
	c := &Collection{entries: make([]models.Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Entries returns a copy of the collection in its current order.
func (c *Collection) Entries() []models.Entry {
	out := make([]models.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// indexOf returns the position of the entry with the given id, or -1.
func (c *Collection) indexOf(id string) int {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// InsertFront places e at index 0, making it the most recent entry.
func (c *Collection) InsertFront(e models.Entry) {
	c.entries = append([]models.Entry{e}, c.entries...)
}

// StartEdit captures id as the pending edit target and returns a draft
// populated from the entry. It does not mutate the collection. ok is
// false when no entry has that id.
func (c *Collection) StartEdit(id string) (Draft, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return Draft{}, false
	}
	e := c.entries[i]
	c.editID = id
	return Draft{
		Title: e.Title,
		Text:  e.Text,
		Mood:  e.Mood,
		Date:  datex.ToEditable(e.Date),
	}, true
}

// Editing reports the pending edit target, if any.
func (c *Collection) Editing() (string, bool) {
	return c.editID, c.editID != ""
}

// CancelEdit returns the form to Idle without mutating anything.
func (c *Collection) CancelEdit() {
	c.editID = ""
}

// CommitEdit overwrites the pending entry in place, preserving both its
// position and its id, and clears the pending target. ok is false when no
// edit is pending or the target has vanished.
func (c *Collection) CommitEdit(title, text, mood, date string) (models.Entry, bool) {
	if c.editID == "" {
		return models.Entry{}, false
	}
	i := c.indexOf(c.editID)
	if i < 0 {
		c.editID = ""
		return models.Entry{}, false
	}

	e := models.Entry{ID: c.editID, Title: title, Text: text, Mood: mood, Date: date}
	c.entries[i] = e
	c.editID = ""
	return e, true
}

// Remove deletes the entry with the given id, shifting subsequent entries
// down by one. ok is false when no entry has that id.
func (c *Collection) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	if c.editID == id {
		c.editID = ""
	}
	return true
}

// Search returns the entries whose title or text contains q
// case-insensitively, in collection order. The result is a filtered view:
// the underlying collection is never mutated, and an empty query returns
// the full collection.
func (c *Collection) Search(q string) []models.Entry {
	out := make([]models.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Matches(q) {
			out = append(out, e)
		}
	}
	return out
}
