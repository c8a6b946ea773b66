package pretty

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultPlaceholder is rendered when there is nothing to show.
const DefaultPlaceholder = "No content"

// Formatter renders upstream text as an HTML fragment. Upstream text is
// untrusted: every text run is escaped before it is wrapped, and the final
// fragment is filtered through an allow-list policy.
type Formatter struct {
	placeholder string
	policy      *bluemonday.Policy
}

// NewFormatter returns a Formatter using placeholder for empty output.
func NewFormatter(placeholder string) *Formatter {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = DefaultPlaceholder
	}
	return &Formatter{placeholder: placeholder, policy: newPolicy()}
}

var defaultFormatter = NewFormatter("")

// HTML renders text with the default formatter.
func HTML(text string) string {
	return defaultFormatter.HTML(text)
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "section", "h3", "h4", "p", "ul", "li")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^rl-[a-z-]+$`)).Globally()
	return p
}

// HTML renders text as a sequence of heading, list and paragraph elements.
func (f *Formatter) HTML(text string) string {
	var b strings.Builder
	writeBlocks(&b, Blocks(text))
	if b.Len() == 0 {
		return f.Placeholder()
	}
	return f.policy.Sanitize(`<div class="rl-result">` + b.String() + `</div>`)
}

// Placeholder is the fragment rendered for empty input.
func (f *Formatter) Placeholder() string {
	return `<p class="rl-empty">` + html.EscapeString(f.placeholder) + `</p>`
}

func writeBlocks(b *strings.Builder, blocks []Block) {
	for _, blk := range blocks {
		switch blk.Kind {
		case BlockHeading:
			b.WriteString(`<h4 class="rl-heading">`)
			b.WriteString(html.EscapeString(blk.Text()))
			b.WriteString(`</h4>`)
		case BlockBulletList:
			b.WriteString(`<ul class="rl-list">`)
			for _, item := range blk.Items() {
				b.WriteString(`<li>`)
				b.WriteString(html.EscapeString(item))
				b.WriteString(`</li>`)
			}
			b.WriteString(`</ul>`)
		default:
			b.WriteString(`<p class="rl-paragraph">`)
			b.WriteString(html.EscapeString(blk.Text()))
			b.WriteString(`</p>`)
		}
	}
}
