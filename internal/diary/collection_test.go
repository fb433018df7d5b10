package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okataev/deardiary/internal/models"
)

func entry(id, title, text string) models.Entry {
	return models.Entry{ID: id, Title: title, Text: text, Mood: "neutral", Date: "1/1/2024"}
}

func TestInsertFront_NewEntryAtIndexZero(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "first", "one")})

	c.InsertFront(entry("b", "second", "two"))

	got := c.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "new entry must land at index 0")
	assert.Equal(t, "a", got[1].ID)
}

func TestEntries_ReturnsACopy(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "first", "one")})

	got := c.Entries()
	got[0].Title = "mutated"

	assert.Equal(t, "first", c.Entries()[0].Title)
}

func TestStartEdit_PopulatesDraftWithoutMutating(t *testing.T) {
	e := models.Entry{ID: "a", Title: "trip", Text: "fjords", Mood: "happy", Date: "1/1/2024"}
	c := NewCollection([]models.Entry{e})

	draft, ok := c.StartEdit("a")
	require.True(t, ok)
	assert.Equal(t, "trip", draft.Title)
	assert.Equal(t, "fjords", draft.Text)
	assert.Equal(t, "happy", draft.Mood)
	assert.Equal(t, "2024-01-01", draft.Date, "draft date must be edit-friendly")

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, "a", id)
	assert.Equal(t, e, c.Entries()[0], "starting an edit must not mutate")
}

func TestStartEdit_UnknownID(t *testing.T) {
	c := NewCollection(nil)

	_, ok := c.StartEdit("ghost")
	assert.False(t, ok)

	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestCommitEdit_OverwritesInPlace(t *testing.T) {
	c := NewCollection([]models.Entry{
		entry("a", "head", "one"),
		entry("b", "middle", "two"),
		entry("c", "tail", "three"),
	})

	_, ok := c.StartEdit("b")
	require.True(t, ok)

	updated, ok := c.CommitEdit("new title", "new text", "sad", "2/2/2024")
	require.True(t, ok)
	assert.Equal(t, "b", updated.ID, "edit must preserve the entry id")

	got := c.Entries()
	require.Len(t, got, 3, "edit must not change the collection length")
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "new title", got[1].Title, "edit must preserve position")
	assert.Equal(t, "c", got[2].ID)

	_, editing := c.Editing()
	assert.False(t, editing, "commit must return the form to idle")
}

func TestCommitEdit_WithoutPendingTarget(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "t", "x")})

	_, ok := c.CommitEdit("t", "x", "m", "d")
	assert.False(t, ok)
}

func TestCancelEdit(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "t", "x")})

	_, ok := c.StartEdit("a")
	require.True(t, ok)

	c.CancelEdit()

	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestRemove_ShiftsSubsequentEntries(t *testing.T) {
	c := NewCollection([]models.Entry{
		entry("a", "head", "one"),
		entry("b", "middle", "two"),
		entry("c", "tail", "three"),
	})

	require.True(t, c.Remove("b"))

	got := c.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestRemove_UnknownID(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "t", "x")})

	assert.False(t, c.Remove("ghost"))
	assert.Equal(t, 1, c.Len())
}

func TestRemove_ClearsPendingEditOfRemovedEntry(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "t", "x")})

	_, ok := c.StartEdit("a")
	require.True(t, ok)
	require.True(t, c.Remove("a"))

	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestSearch_Properties(t *testing.T) {
	all := []models.Entry{
		entry("a", "Trip to Oslo", "saw the fjords"),
		entry("b", "Groceries", "milk and eggs"),
		entry("c", "oslo again", "second visit"),
	}
	c := NewCollection(all)

	got := c.Search("OSLO")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "search must keep collection order")
	assert.Equal(t, "c", got[1].ID)

	// Idempotent under re-application.
	again := NewCollection(got).Search("OSLO")
	assert.Equal(t, got, again)

	// Search never mutates the underlying collection.
	assert.Equal(t, all, c.Entries())
}

func TestSearch_EmptyQueryReturnsFullCollection(t *testing.T) {
	all := []models.Entry{
		entry("a", "one", "x"),
		entry("b", "two", "y"),
	}
	c := NewCollection(all)

	assert.Equal(t, all, c.Search(""))
}

func TestSearch_MatchesTextNotJustTitle(t *testing.T) {
	c := NewCollection([]models.Entry{entry("a", "untagged", "met Nora today")})

	got := c.Search("nora")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
