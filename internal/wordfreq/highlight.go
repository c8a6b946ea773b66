package wordfreq

import (
	"regexp"
	"strings"
)

// Span is a run of text that is either marked (a changed word) or not.
type Span struct {
	Text   string `json:"text"`
	Marked bool   `json:"marked"`
}

var nonSpace = regexp.MustCompile(`\S+`)

// Highlight splits text into spans, marking occurrences of words. Each entry
// in words marks at most one occurrence, earliest first, so a word listed
// twice marks its first two occurrences. Whitespace is preserved verbatim.
func Highlight(text string, words []string, opts ...Option) []Span {
	o := buildOptions(opts)
	budget := make(map[string]int, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if o.fold {
			w = strings.ToLower(w)
		}
		budget[w]++
	}

	var spans []Span
	push := func(s string, marked bool) {
		if s == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Marked == marked {
			spans[n-1].Text += s
			return
		}
		spans = append(spans, Span{Text: s, Marked: marked})
	}

	last := 0
	for _, loc := range nonSpace.FindAllStringIndex(text, -1) {
		push(text[last:loc[0]], false)
		word := text[loc[0]:loc[1]]
		key := word
		if o.fold {
			key = strings.ToLower(word)
		}
		marked := budget[key] > 0
		if marked {
			budget[key]--
		}
		push(word, marked)
		last = loc[1]
	}
	push(text[last:], false)
	return spans
}
