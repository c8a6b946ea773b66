package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Node is one level of a rendered result payload. String values become
// blocks, mappings become children headed by their key, and anything else is
// kept as plain text.
type Node struct {
	Heading  string  `json:"heading,omitempty"`
	Blocks   []Block `json:"blocks,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []Node  `json:"children,omitempty"`
}

// Tree converts a decoded JSON-like value into a render tree.
func Tree(value any) Node {
	switch v := value.(type) {
	case nil:
		return Node{}
	case string:
		return Node{Blocks: Blocks(v)}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := Node{Children: make([]Node, 0, len(keys))}
		for _, k := range keys {
			child := Tree(v[k])
			child.Heading = keyTitle(k)
			n.Children = append(n.Children, child)
		}
		return n
	case []any:
		n := Node{Children: make([]Node, 0, len(v))}
		for _, elem := range v {
			n.Children = append(n.Children, Tree(elem))
		}
		return n
	case []string:
		return Node{Blocks: []Block{{Kind: BlockBulletList, Lines: v}}}
	case json.Number:
		return Node{Text: v.String()}
	case float64:
		return Node{Text: formatFloat(v)}
	case float32:
		return Node{Text: formatFloat(float64(v))}
	default:
		return Node{Text: fmt.Sprint(v)}
	}
}

// formatFloat prints f in plain decimal notation, switching to an exponent
// only from 1e21 up.
func formatFloat(f float64) string {
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// DecodeValue parses a JSON document for Tree, keeping numbers as written.
func DecodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// Empty reports whether the node renders nothing.
func (n Node) Empty() bool {
	if len(n.Blocks) > 0 || n.Text != "" {
		return false
	}
	for _, c := range n.Children {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// keyTitle turns "risk_level" into "Risk Level".
func keyTitle(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// TreeHTML renders a tree with the default formatter.
func TreeHTML(n Node) string {
	return defaultFormatter.TreeHTML(n)
}

// TreeHTML renders a tree as nested sections, escaping every text run.
func (f *Formatter) TreeHTML(n Node) string {
	if n.Empty() {
		return f.Placeholder()
	}
	var b strings.Builder
	writeNode(&b, n)
	return f.policy.Sanitize(`<div class="rl-result">` + b.String() + `</div>`)
}

func writeNode(b *strings.Builder, n Node) {
	if n.Empty() {
		return
	}
	if n.Heading != "" {
		b.WriteString(`<section class="rl-node"><h3 class="rl-key">`)
		b.WriteString(html.EscapeString(n.Heading))
		b.WriteString(`</h3>`)
		defer b.WriteString(`</section>`)
	}
	writeBlocks(b, n.Blocks)
	if n.Text != "" {
		b.WriteString(`<p class="rl-value">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString(`</p>`)
	}
	for _, c := range n.Children {
		writeNode(b, c)
	}
}
