package wordfreq

import "strings"

// Result holds the words whose frequency differs between two texts.
// A word repeated n times more often on one side appears n times in that list.
type Result struct {
	Additions []string `json:"additions"`
	Removals  []string `json:"removals"`
}

type options struct {
	mode TokenMode
	fold bool
}

// Option tunes tokenization for Diff and Highlight.
type Option func(*options)

// WithTokenMode selects how texts are split into words.
func WithTokenMode(mode TokenMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithFold compares words case-insensitively.
func WithFold() Option {
	return func(o *options) { o.fold = true }
}

func buildOptions(opts []Option) options {
	o := options{mode: TokenFields}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) tokens(text string) []string {
	toks := Tokenize(text, o.mode)
	if o.fold {
		for i, t := range toks {
			toks[i] = strings.ToLower(t)
		}
	}
	return toks
}

// Diff reports which words occur more often in newText (additions) and which
// occur more often in oldText (removals). It compares counts only; word
// positions and moves are not considered.
func Diff(oldText, newText string, opts ...Option) Result {
	o := buildOptions(opts)
	oldCounts := countWords(o.tokens(oldText))
	newCounts := countWords(o.tokens(newText))
	return Result{
		Additions: surplus(newCounts, oldCounts),
		Removals:  surplus(oldCounts, newCounts),
	}
}

// Empty reports whether neither side gained or lost a word.
func (r Result) Empty() bool {
	return len(r.Additions) == 0 && len(r.Removals) == 0
}

// Counts returns the number of added and removed word occurrences.
func (r Result) Counts() (added, removed int) {
	return len(r.Additions), len(r.Removals)
}

// wordCounts keeps first-appearance order so results are stable across runs.
type wordCounts struct {
	order  []string
	counts map[string]int
}

func countWords(tokens []string) wordCounts {
	wc := wordCounts{
		order:  make([]string, 0, len(tokens)),
		counts: make(map[string]int, len(tokens)),
	}
	for _, tok := range tokens {
		if _, seen := wc.counts[tok]; !seen {
			wc.order = append(wc.order, tok)
		}
		wc.counts[tok]++
	}
	return wc
}

// surplus lists every word of a whose count exceeds its count in b, repeated
// by the difference.
func surplus(a, b wordCounts) []string {
	out := make([]string, 0)
	for _, word := range a.order {
		delta := a.counts[word] - b.counts[word]
		for i := 0; i < delta; i++ {
			out = append(out, word)
		}
	}
	return out
}
