package present

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options controls how results are written to a terminal.
type Options struct {
	Color        bool
	Width        int
	Style        string
	GlamourStyle string
}

// Palette holds the styles shared by the CLI and the viewer.
type Palette struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
}

// NewPalette returns styles rendering to w, or unstyled ones when color is
// false.
func NewPalette(w io.Writer, color bool) Palette {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return Palette{
		Added:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Removed: r.NewStyle().Foreground(lipgloss.Color("203")).Strikethrough(true),
		Title:   r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
