package app

// Widths and heights returned here are content sizes; every pane is drawn
// with a one-cell border on each side.
const borderOverhead = 2

// paneWidths splits the terminal width between the old and new panes.
func paneWidths(totalWidth int) (int, int) {
	available := totalWidth - 2*borderOverhead
	if available < 2 {
		return 1, 1
	}
	left := available / 2
	return left, available - left
}

// paneHeights splits the body height between the text panes and, when
// present, the sections pane below them, which gets about a third.
func paneHeights(bodyHeight int, withSections bool) (int, int) {
	if !withSections {
		return max(bodyHeight-borderOverhead, 1), 0
	}
	available := bodyHeight - 2*borderOverhead
	if available < 2 {
		return 1, 1
	}
	bottom := max(available/3, 1)
	return available - bottom, bottom
}
