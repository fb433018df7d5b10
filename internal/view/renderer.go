package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Renderer redraws the current row set. Implementations must draw
// synchronously: by the time Render returns, the user sees the rows.
type Renderer interface {
	Render(rows []Row)
}

// Light and dark palettes for the terminal renderer.
const (
	colorInkLight  = "#1a1a2e"
	colorDimLight  = "#6b7280"
	colorMoodLight = "#7c5cbf"

	colorInkDark  = "#e8e8f0"
	colorDimDark  = "#9ca3af"
	colorMoodDark = "#b9a3eb"
)

type palette struct {
	title lipgloss.Style
	meta  lipgloss.Style
	mood  lipgloss.Style
	faint lipgloss.Style
}

func newPalette(dark bool) palette {
	ink, dim, mood := colorInkLight, colorDimLight, colorMoodLight
	if dark {
		ink, dim, mood = colorInkDark, colorDimDark, colorMoodDark
	}
	return palette{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ink)),
		meta:  lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		mood:  lipgloss.NewStyle().Foreground(lipgloss.Color(mood)),
		faint: lipgloss.NewStyle().Faint(true),
	}
}

// TerminalRenderer draws rows as a numbered list. The number shown next
// to each row is what the edit and delete commands accept.
type TerminalRenderer struct {
	w io.Writer
	p palette
}

// NewTerminalRenderer returns a renderer writing to w using the light or
// dark palette.
func NewTerminalRenderer(w io.Writer, dark bool) *TerminalRenderer {
	return &TerminalRenderer{w: w, p: newPalette(dark)}
}

// SetDark switches the palette; the next Render uses it.
func (r *TerminalRenderer) SetDark(dark bool) {
	r.p = newPalette(dark)
}

func (r *TerminalRenderer) Render(rows []Row) {
	for _, row := range rows {
		if row.Placeholder {
			fmt.Fprintln(r.w, r.p.faint.Render(row.Title))
			continue
		}
		fmt.Fprintf(r.w, "%2d. %s\n", row.Index+1, r.p.title.Render(row.Title))
		fmt.Fprintf(r.w, "    %s\n", row.Text)
		fmt.Fprintf(r.w, "    %s\n", r.p.meta.Render(row.Date+" | Mood: ")+r.p.mood.Render(row.Mood))
	}
}
