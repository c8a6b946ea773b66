package patch

import (
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

type RowKind int

const (
	RowContext RowKind = iota
	RowDelete
	RowAdd
	RowChange
)

// Row is one aligned line pair from a hunk. Deleted lines are paired with the
// added lines that follow them, so a Change row carries both sides.
type Row struct {
	Kind    RowKind
	Path    string
	OldLine int
	NewLine int
	OldText string
	NewText string
}

func (r Row) HasOld() bool { return r.Kind != RowAdd }
func (r Row) HasNew() bool { return r.Kind != RowDelete }

// ParseUnifiedDiff reads a (multi-file) unified diff into aligned rows.
func ParseUnifiedDiff(raw []byte) ([]Row, error) {
	fileDiffs, err := sgdiff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}

	rows := make([]Row, 0, 64)
	for _, fd := range fileDiffs {
		path := normalizePath(fd)
		for _, h := range fd.Hunks {
			oldLn := int(h.OrigStartLine)
			newLn := int(h.NewStartLine)
			lines := splitHunkBody(h.Body)
			for i := 0; i < len(lines); {
				line := lines[i]
				if line == "" {
					i++
					continue
				}
				switch line[0] {
				case ' ':
					rows = append(rows, Row{
						Kind:    RowContext,
						Path:    path,
						OldLine: oldLn,
						NewLine: newLn,
						OldText: line[1:],
						NewText: line[1:],
					})
					oldLn++
					newLn++
					i++

				case '-', '+':
					dels := takeRun(lines, &i, '-')
					adds := takeRun(lines, &i, '+')
					rows = append(rows, pairRuns(path, &oldLn, &newLn, dels, adds)...)

				case '\\':
					// "\ No newline at end of file"
					i++

				default:
					return nil, fmt.Errorf("%s: unexpected hunk line prefix %q", path, line)
				}
			}
		}
	}
	return rows, nil
}

// Files lists the distinct paths in rows, in patch order.
func Files(rows []Row) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.Path] {
			seen[r.Path] = true
			out = append(out, r.Path)
		}
	}
	return out
}

// Texts rebuilds the old and new sides of path from its hunks. Lines outside
// the hunks are not part of a patch and are absent. An empty path selects the
// first file.
func Texts(rows []Row, path string) (oldText, newText string) {
	if path == "" {
		if files := Files(rows); len(files) > 0 {
			path = files[0]
		}
	}
	var oldLines, newLines []string
	for _, r := range rows {
		if r.Path != path {
			continue
		}
		if r.HasOld() {
			oldLines = append(oldLines, r.OldText)
		}
		if r.HasNew() {
			newLines = append(newLines, r.NewText)
		}
	}
	return strings.Join(oldLines, "\n"), strings.Join(newLines, "\n")
}

func takeRun(lines []string, i *int, prefix byte) []string {
	var out []string
	for *i < len(lines) && len(lines[*i]) > 0 && lines[*i][0] == prefix {
		out = append(out, lines[*i][1:])
		*i++
	}
	return out
}

func pairRuns(path string, oldLn, newLn *int, dels, adds []string) []Row {
	count := max(len(dels), len(adds))
	out := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		row := Row{Path: path}
		hasDel := i < len(dels)
		hasAdd := i < len(adds)
		if hasDel {
			row.OldLine = *oldLn
			row.OldText = dels[i]
			*oldLn++
		}
		if hasAdd {
			row.NewLine = *newLn
			row.NewText = adds[i]
			*newLn++
		}
		switch {
		case hasDel && hasAdd:
			row.Kind = RowChange
		case hasDel:
			row.Kind = RowDelete
		default:
			row.Kind = RowAdd
		}
		out = append(out, row)
	}
	return out
}

func normalizePath(fd *sgdiff.FileDiff) string {
	path := fd.NewName
	if path == "" || path == "/dev/null" {
		path = fd.OrigName
	}
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "a/")
	return strings.TrimPrefix(path, "b/")
}

func splitHunkBody(body []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
