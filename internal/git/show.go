package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"redline/internal/util"
)

// ErrNotInRevision is returned when a path does not exist at a revision.
var ErrNotInRevision = errors.New("path not present at revision")

// ShowFile returns the content of path (relative to cwd) as of rev.
func ShowFile(ctx context.Context, cwd, rev, path string) (string, error) {
	rev = strings.TrimSpace(rev)
	if rev == "" {
		rev = "HEAD"
	}
	object := rev + ":./" + filepath.ToSlash(filepath.Clean(path))
	out, err := util.Run(ctx, cwd, "git", "show", object)
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "does not exist") || strings.Contains(msg, "exists on disk, but not in") {
			return "", fmt.Errorf("%s at %s: %w", path, rev, ErrNotInRevision)
		}
		return "", err
	}
	return out, nil
}

// Revisions pairs the committed and working-tree text of one file.
type Revisions struct {
	Path    string
	Old     string
	New     string
	Deleted bool
	Added   bool
}

// LoadRevisions reads path at rev and from the working tree under cwd. A
// side that does not exist is empty and flagged.
func LoadRevisions(ctx context.Context, cwd, rev, path string) (Revisions, error) {
	r := Revisions{Path: path}

	old, err := ShowFile(ctx, cwd, rev, path)
	switch {
	case errors.Is(err, ErrNotInRevision):
		r.Added = true
	case err != nil:
		return Revisions{}, err
	default:
		r.Old = old
	}

	b, err := os.ReadFile(filepath.Join(cwd, path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.Deleted = true
	case err != nil:
		return Revisions{}, fmt.Errorf("read %s: %w", path, err)
	default:
		r.New = string(b)
	}
	return r, nil
}
