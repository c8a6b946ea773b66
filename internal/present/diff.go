package present

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"redline/internal/wordfreq"
)

// WriteDiff prints the added and removed word lists of r.
func WriteDiff(w io.Writer, r wordfreq.Result, opts Options) error {
	p := NewPalette(w, opts.Color)
	if r.Empty() {
		_, err := fmt.Fprintln(w, p.Muted.Render("No word-frequency changes."))
		return err
	}

	var b strings.Builder
	writeWordList(&b, p.Title.Render(fmt.Sprintf("Added (%d)", len(r.Additions))), r.Additions, p.Added, opts.Width)
	writeWordList(&b, p.Title.Render(fmt.Sprintf("Removed (%d)", len(r.Removals))), r.Removals, p.Removed, opts.Width)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeWordList(b *strings.Builder, title string, words []string, style lipgloss.Style, width int) {
	b.WriteString(title)
	b.WriteString("\n")
	if len(words) == 0 {
		return
	}
	shown := make([]string, len(words))
	for i, word := range words {
		if word == "" {
			word = strconv.Quote(word)
		}
		shown[i] = word
	}
	wrapWidth := max(width-2, 1)
	for _, line := range wrapWords(shown, wrapWidth) {
		b.WriteString("  ")
		for i, word := range line {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(style.Render(word))
		}
		b.WriteString("\n")
	}
}

// wrapWords groups words into lines no wider than width. A single word wider
// than width gets a line of its own.
func wrapWords(words []string, width int) [][]string {
	var (
		out  [][]string
		line []string
		used int
	)
	for _, word := range words {
		wl := lipgloss.Width(word)
		if len(line) > 0 && used+1+wl > width {
			out = append(out, line)
			line, used = nil, 0
		}
		if len(line) > 0 {
			used++
		}
		line = append(line, word)
		used += wl
	}
	if len(line) > 0 {
		out = append(out, line)
	}
	return out
}

// Spans renders highlighted spans, styling the marked ones.
func Spans(spans []wordfreq.Span, marked lipgloss.Style) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Marked {
			b.WriteString(marked.Render(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// WriteInline prints both texts with their changed words styled.
func WriteInline(w io.Writer, oldText, newText string, r wordfreq.Result, opts Options, diffOpts ...wordfreq.Option) error {
	p := NewPalette(w, opts.Color)
	oldSpans := wordfreq.Highlight(oldText, r.Removals, diffOpts...)
	newSpans := wordfreq.Highlight(newText, r.Additions, diffOpts...)
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		p.Title.Render("Old"), Spans(oldSpans, p.Removed),
		p.Title.Render("New"), Spans(newSpans, p.Added))
	return err
}
