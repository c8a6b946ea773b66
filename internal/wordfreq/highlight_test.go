package wordfreq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightMarksEarliestOccurrences(t *testing.T) {
	spans := Highlight("pay  the rent, pay the fee", []string{"pay", "fee"})

	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	assert.Equal(t, "pay  the rent, pay the fee", b.String(), "spans must reassemble the input")

	assert.Equal(t, []Span{
		{Text: "pay", Marked: true},
		{Text: "  the rent, pay the ", Marked: false},
		{Text: "fee", Marked: true},
	}, spans)
}

func TestHighlightRepeatedWordBudget(t *testing.T) {
	spans := Highlight("a a a", []string{"a", "a"})
	assert.Equal(t, []Span{
		{Text: "a", Marked: true},
		{Text: " ", Marked: false},
		{Text: "a", Marked: true},
		{Text: " a", Marked: false},
	}, spans)
}

func TestHighlightFold(t *testing.T) {
	spans := Highlight("Notice is given", []string{"notice"}, WithFold())
	assert.Equal(t, []Span{
		{Text: "Notice", Marked: true},
		{Text: " is given", Marked: false},
	}, spans)
}

func TestHighlightIgnoresEmptyWords(t *testing.T) {
	spans := Highlight(" x ", []string{""})
	assert.Equal(t, []Span{{Text: " x ", Marked: false}}, spans)
}

func TestHighlightEmptyText(t *testing.T) {
	assert.Empty(t, Highlight("", []string{"a"}))
}
