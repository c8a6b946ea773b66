package sections

import (
	"regexp"
	"strings"
)

// DefaultDelimiter introduces every section in comparison reports.
const DefaultDelimiter = "**Section"

const (
	markerOriginal = "- Original:"
	markerRevised  = "- Revised:"
	defaultName    = "General"
)

var kindMarkers = []struct {
	token string
	kind  ChangeKind
}{
	{"**Addition:**", KindAddition},
	{"**Change:**", KindChange},
	{"**Shift:**", KindShift},
}

// boldLabel matches a "**Label:**" marker; the description follows the last one.
var boldLabel = regexp.MustCompile(`\*\*[^*]*:\*\*`)

// Parser extracts section changes from the markdown a comparison workflow
// returns. It never fails: anything it cannot place is reported as Dropped.
type Parser struct {
	delimiter string
}

// NewParser returns a parser splitting on delimiter, or on DefaultDelimiter
// when delimiter is blank.
func NewParser(delimiter string) Parser {
	if strings.TrimSpace(delimiter) == "" {
		delimiter = DefaultDelimiter
	}
	return Parser{delimiter: delimiter}
}

// Parse runs the default parser over markdown.
func Parse(markdown string) Comparison {
	c, _ := NewParser("").ParseReport(markdown)
	return c
}

// ParseReport parses markdown and also returns the lines it had to drop.
func (p Parser) ParseReport(markdown string) (Comparison, []Dropped) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	fragments := strings.Split(markdown, p.delimiter)

	var dropped []Dropped
	if len(fragments) > 0 {
		// Text before the first delimiter belongs to no section.
		for _, line := range nonBlankLines(fragments[0]) {
			if isMarkerLine(line) {
				dropped = append(dropped, Dropped{Line: line, Reason: reasonPreamble})
			}
		}
		fragments = fragments[1:]
	}

	out := Comparison{Sections: make([]Section, 0, len(fragments))}
	for _, frag := range fragments {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		sec, d := p.parseFragment(frag)
		dropped = append(dropped, d...)
		if len(sec.Items) > 0 {
			out.Sections = append(out.Sections, sec)
		}
	}
	out.TotalSections = len(out.Sections)
	return out, dropped
}

func (p Parser) parseFragment(frag string) (Section, []Dropped) {
	heading, body, _ := strings.Cut(frag, "\n")
	if headingText(heading) == "" {
		heading, body = nameFromBody(heading, body)
	}
	sec := Section{Name: p.sectionName(heading)}

	var (
		dropped []Dropped
		current *Item
	)
	drop := func(line, reason string) {
		dropped = append(dropped, Dropped{Section: sec.Name, Line: line, Reason: reason})
	}

	for _, line := range nonBlankLines(body) {
		switch {
		case strings.Contains(line, markerOriginal):
			if current != nil {
				sec.Items = append(sec.Items, *current)
			}
			current = &Item{Original: quotedAfter(line, markerOriginal)}

		case strings.Contains(line, markerRevised):
			if current == nil {
				drop(line, reasonNoItem)
				continue
			}
			current.Revised = quotedAfter(line, markerRevised)

		default:
			kind, ok := lineKind(line)
			if !ok {
				drop(line, reasonUnrecognized)
				continue
			}
			if current == nil {
				drop(line, reasonNoItem)
				continue
			}
			current.Kind = kind
			current.Description = descriptionOf(line)
		}
	}
	if current != nil {
		sec.Items = append(sec.Items, *current)
	}
	return sec, dropped
}

// sectionName turns the remainder of a delimiter line into a display name:
// "**Section 1.**" becomes "Section 1".
func (p Parser) sectionName(heading string) string {
	name := headingText(heading)
	if name == "" {
		return defaultName
	}
	prefix := strings.TrimSpace(strings.ReplaceAll(p.delimiter, "**", ""))
	if prefix == "" {
		return name
	}
	return prefix + " " + name
}

func headingText(heading string) string {
	name := strings.TrimSpace(strings.ReplaceAll(heading, "**", ""))
	return strings.TrimSpace(strings.TrimSuffix(name, "."))
}

// nameFromBody moves the first non-blank body line into the heading when it
// is not a marker line.
func nameFromBody(heading, body string) (string, string) {
	rest := body
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimSpace(line) != "" {
			if isMarkerLine(line) {
				return heading, body
			}
			return line, next
		}
		if !more {
			return heading, body
		}
		rest = next
	}
}

func lineKind(line string) (ChangeKind, bool) {
	for _, m := range kindMarkers {
		if strings.Contains(line, m.token) {
			return m.kind, true
		}
	}
	return KindNone, false
}

func isMarkerLine(line string) bool {
	if strings.Contains(line, markerOriginal) || strings.Contains(line, markerRevised) {
		return true
	}
	_, ok := lineKind(line)
	return ok
}

func quotedAfter(line, marker string) string {
	_, rest, _ := strings.Cut(line, marker)
	return stripQuotes(rest)
}

func descriptionOf(line string) string {
	locs := boldLabel.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return ""
	}
	return stripQuotes(line[locs[len(locs)-1][1]:])
}

func stripQuotes(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

func nonBlankLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
