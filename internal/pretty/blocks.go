package pretty

import (
	"encoding/json"
	"regexp"
	"strings"
)

// BlockKind is the display shape chosen for a block of text.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBulletList
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockBulletList:
		return "list"
	default:
		return "paragraph"
	}
}

func (k BlockKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Block is a run of non-blank lines with its classification.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Lines []string  `json:"lines"`
}

var (
	bulletLine = regexp.MustCompile(`^\s*[-•]`)
	bulletMark = regexp.MustCompile(`^\s*[-•]\s*`)
	shouting   = regexp.MustCompile(`^[\p{Lu}\d\s/-]+$`)
)

// rules are tried in order; the first predicate that holds decides the kind.
// Anything left over is a paragraph.
var rules = []struct {
	kind  BlockKind
	match func(lines []string) bool
}{
	{BlockHeading, isHeading},
	{BlockBulletList, isBulletList},
}

func isHeading(lines []string) bool {
	if len(lines) != 1 || bulletLine.MatchString(lines[0]) {
		return false
	}
	line := strings.TrimSpace(lines[0])
	return strings.HasSuffix(line, ".") || strings.HasSuffix(line, ":") || shouting.MatchString(line)
}

func isBulletList(lines []string) bool {
	for _, line := range lines {
		if !bulletLine.MatchString(line) {
			return false
		}
	}
	return true
}

func classify(lines []string) BlockKind {
	for _, r := range rules {
		if r.match(lines) {
			return r.kind
		}
	}
	return BlockParagraph
}

// Blocks cleans text and splits it on blank lines into classified blocks.
func Blocks(text string) []Block {
	chunks := splitBlocks(Clean(text))
	out := make([]Block, 0, len(chunks))
	for _, lines := range chunks {
		out = append(out, Block{Kind: classify(lines), Lines: lines})
	}
	return out
}

// Items returns the list entries of a bullet block without their markers.
func (b Block) Items() []string {
	out := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		out = append(out, bulletMark.ReplaceAllString(line, ""))
	}
	return out
}

// Text joins the block's lines; headings are trimmed.
func (b Block) Text() string {
	if b.Kind == BlockHeading {
		return strings.TrimSpace(strings.Join(b.Lines, " "))
	}
	return strings.Join(b.Lines, "\n")
}
