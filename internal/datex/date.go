// Package datex converts between the date representations the diary uses:
// the display form stored on entries, the YYYY-MM-DD form typed into the
// entry form, and the timestamp used when no date is given.
package datex

import (
	"fmt"
	"time"
)

const (
	// displayLayout is the stored form, e.g. "1/1/2024".
	displayLayout = "1/2/2006"
	// inputLayout is the form accepted from the entry form, e.g. "2024-01-01".
	inputLayout = "2006-01-02"
	// stampLayout is used when an entry is saved without an explicit date.
	stampLayout = "1/2/2006 3:04:05 PM"
)

// nowFn is a test seam for the current time.
var nowFn = time.Now

// Now returns the current moment in display-timestamp form.
func Now() string {
	return nowFn().Format(stampLayout)
}

// FromInput parses a YYYY-MM-DD form value into display form.
func FromInput(s string) (string, error) {
	t, err := time.Parse(inputLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(displayLayout), nil
}

// ToEditable converts a stored display date back into the YYYY-MM-DD form
// the entry form accepts. Dates that do not parse (e.g. full timestamps)
// are returned unchanged.
func ToEditable(display string) string {
	if t, err := time.Parse(displayLayout, display); err == nil {
		return t.Format(inputLayout)
	}
	if t, err := time.Parse(stampLayout, display); err == nil {
		return t.Format(inputLayout)
	}
	return display
}
