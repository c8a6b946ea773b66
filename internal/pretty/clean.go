package pretty

import (
	"regexp"
	"strings"
)

var (
	starBullet     = regexp.MustCompile(`(?m)^[ \t]*(?:\*[ \t]+)+`)
	horizontalRule = regexp.MustCompile(`(?m)^[ \t]*-{3,}[ \t]*$`)
	blankRun       = regexp.MustCompile(`\n(?:[ \t]*\n){3,}`)
	blockBreak     = regexp.MustCompile(`\n[ \t]*\n`)
)

// Clean removes the markdown decoration an AI workflow tends to emit: bold
// markers, "* " bullets and horizontal rules. Runs of three or more blank
// lines become a single blank line.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "**", "")
	text = starBullet.ReplaceAllString(text, "")
	text = horizontalRule.ReplaceAllString(text, "")
	return blankRun.ReplaceAllString(text, "\n\n")
}

func splitBlocks(text string) [][]string {
	var out [][]string
	for _, chunk := range blockBreak.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimRight(line, " \t")
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			out = append(out, lines)
		}
	}
	return out
}
