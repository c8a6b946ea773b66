package util

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes name with args in cwd and returns its combined output. A
// failing command's output is folded into the returned error.
func Run(ctx context.Context, cwd string, name string, args ...string) (string, error) {
	return run(ctx, cwd, nil, name, args...)
}

// RunWithStdin is Run with stdin fed to the command.
func RunWithStdin(ctx context.Context, cwd, stdin, name string, args ...string) (string, error) {
	return run(ctx, cwd, strings.NewReader(stdin), name, args...)
}

func run(ctx context.Context, cwd string, stdin *strings.Reader, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	if stdin != nil {
		cmd.Stdin = stdin
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("command failed: %s %s: %w (%s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
