package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// WriteHTML prints an HTML fragment, syntax-highlighted when colour is on.
func WriteHTML(w io.Writer, fragment string, opts Options) error {
	if !strings.HasSuffix(fragment, "\n") {
		fragment += "\n"
	}
	if !opts.Color {
		_, err := io.WriteString(w, fragment)
		return err
	}
	style := opts.Style
	if style == "" {
		style = "monokai"
	}
	if err := quick.Highlight(w, fragment, "html", "terminal256", style); err != nil {
		return fmt.Errorf("highlight html: %w", err)
	}
	return nil
}
