package git

import (
	"context"
	"strings"

	"redline/internal/util"
)

// RepoRoot returns the top-level directory of the work tree containing cwd.
func RepoRoot(ctx context.Context, cwd string) (string, error) {
	out, err := util.Run(ctx, cwd, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
