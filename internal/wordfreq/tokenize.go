package wordfreq

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenMode controls how a text is split into words.
type TokenMode int

const (
	// TokenFields splits on whitespace runs and never yields empty words.
	TokenFields TokenMode = iota
	// TokenRaw splits on whitespace runs the way a regexp split does, so
	// leading or trailing whitespace (and an empty text) yields an empty word.
	TokenRaw
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Tokenize splits text into words according to mode.
func Tokenize(text string, mode TokenMode) []string {
	if mode == TokenRaw {
		return whitespaceRun.Split(text, -1)
	}
	return strings.Fields(text)
}

func (m TokenMode) String() string {
	if m == TokenRaw {
		return "raw"
	}
	return "fields"
}

// ParseTokenMode maps a config value to a TokenMode.
func ParseTokenMode(s string) (TokenMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fields":
		return TokenFields, nil
	case "raw":
		return TokenRaw, nil
	}
	return TokenFields, fmt.Errorf("unknown token mode %q (want fields or raw)", s)
}
