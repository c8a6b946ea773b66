package git

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"redline/internal/util"
)

// ChangedFile is one path git status reports as modified, added or untracked.
type ChangedFile struct {
	Path      string
	Status    string
	Untracked bool
}

// ChangedFiles lists the changed paths of the work tree at cwd, relative to
// the repository root and sorted.
func ChangedFiles(ctx context.Context, cwd string) ([]ChangedFile, error) {
	out, err := util.Run(ctx, cwd, "git", "status", "--porcelain=v2", "--untracked-files=all", "-z")
	if err != nil {
		return nil, err
	}

	files, err := parsePorcelainV2Z([]byte(out))
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// porcelainFields is the field count of each tracked-entry record type.
var porcelainFields = map[byte]int{'1': 9, '2': 10, 'u': 11}

func parsePorcelainV2Z(data []byte) ([]ChangedFile, error) {
	records := bytes.Split(data, []byte{0})
	files := make([]ChangedFile, 0, len(records))

	for i := 0; i < len(records); i++ {
		rec := string(records[i])
		if rec == "" {
			continue
		}

		switch rec[0] {
		case '1', '2', 'u':
			// The path is the last field and may itself contain spaces.
			n := porcelainFields[rec[0]]
			fields := strings.SplitN(rec, " ", n)
			if len(fields) < n || fields[n-1] == "" {
				return nil, fmt.Errorf("unexpected porcelain record: %q", rec)
			}
			files = append(files, ChangedFile{
				Path:   fields[n-1],
				Status: strings.Trim(fields[1], "."),
			})
			if rec[0] == '2' && i+1 < len(records) {
				i++ // rename/copy records are followed by the original path
			}

		case '?':
			files = append(files, ChangedFile{
				Path:      strings.TrimPrefix(rec, "? "),
				Status:    "??",
				Untracked: true,
			})

		case '!', '#':
			continue

		default:
			return nil, fmt.Errorf("unknown porcelain record: %q", rec)
		}
	}
	return files, nil
}
