package sections

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Find returns the sections whose names fuzzy-match pattern, best match
// first. A blank pattern returns every section in document order.
func (c Comparison) Find(pattern string) []Section {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return c.Sections
	}
	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		names[i] = s.Name
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]Section, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.Sections[m.Index])
	}
	return out
}

// Filter returns a copy of c holding only the sections matching pattern.
func (c Comparison) Filter(pattern string) Comparison {
	found := c.Find(pattern)
	return Comparison{Sections: found, TotalSections: len(found)}
}

// ItemCount is the number of items across all sections.
func (c Comparison) ItemCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}

// ToMarkdown renders the comparison as plain markdown for terminal display.
func (c Comparison) ToMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comparison\n\n%d section(s), %d change(s)\n", c.TotalSections, c.ItemCount())
	for _, s := range c.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Name)
		for i, it := range s.Items {
			b.WriteString("\n")
			label := it.Kind.String()
			if label == "" {
				label = "Item"
			}
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, label)
			if it.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", it.Description)
			}
			if it.Original != "" {
				fmt.Fprintf(&b, "- **Original:** %s\n", it.Original)
			}
			if it.Revised != "" {
				fmt.Fprintf(&b, "- **Revised:** %s\n", it.Revised)
			}
		}
	}
	return b.String()
}
