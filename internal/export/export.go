// Package export serializes a diary to a flat text blob and delivers it
// to a file.
package export

import (
	"fmt"
	"strings"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/models"
)

// Build renders the full entry list, in collection order, to the export
// text layout:
//
//	My Diary - <username>
//
//	[date] (mood)
//	title
//	text
//
// It fails with common.ErrNothingToExport when the collection is empty.
func Build(username string, entries []models.Entry) (string, error) {
	if len(entries) == 0 {
		return "", common.ErrNothingToExport
	}

	var b strings.Builder
	fmt.Fprintf(&b, "My Diary - %s\n\n", username)
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] (%s)\n%s\n%s\n\n", e.Date, e.Mood, e.Title, e.Text)
	}
	return b.String(), nil
}

// Filename suggests the export file name for a user's diary.
func Filename(username string) string {
	return fmt.Sprintf("%s_Diary.txt", username)
}
