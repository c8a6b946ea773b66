package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"redline/internal/sections"
)

// WriteSections renders a parsed comparison as terminal markdown.
func WriteSections(w io.Writer, c sections.Comparison, opts Options) error {
	md := c.ToMarkdown()
	if c.TotalSections == 0 {
		md += "\nNo sections were recognised in the report.\n"
	}

	style := opts.GlamourStyle
	if !opts.Color || style == "" {
		style = "notty"
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
