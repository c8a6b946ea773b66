package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"redline/internal/git"
	"redline/internal/patch"
)

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// textPair is the old and new text being compared, with display names.
type textPair struct {
	oldName string
	newName string
	oldText string
	newText string
}

// sourceFlags selects where a text pair comes from: two files, one file of a
// unified diff, or a file at a git revision against the working tree.
type sourceFlags struct {
	patchPath string
	file      string
	rev       string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.patchPath, "patch", "", "read both sides from a unified diff file (- for stdin)")
	cmd.Flags().StringVar(&s.file, "file", "", "file inside --patch to compare (default: first)")
	cmd.Flags().StringVar(&s.rev, "rev", "", "compare PATH at this git revision with the working tree")
	cmd.MarkFlagsMutuallyExclusive("patch", "rev")
}

func (s *sourceFlags) load(cmd *cobra.Command, args []string) (textPair, error) {
	switch {
	case s.patchPath != "":
		if len(args) > 0 {
			return textPair{}, fmt.Errorf("--patch takes no positional arguments")
		}
		return loadFromPatch(cmd, s.patchPath, s.file)
	case s.rev != "":
		if len(args) > 1 {
			return textPair{}, fmt.Errorf("--rev takes at most one PATH")
		}
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return loadFromRev(cmd.Context(), s.rev, path)
	}

	if len(args) != 2 {
		return textPair{}, fmt.Errorf("expected OLD and NEW, got %d argument(s)", len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return textPair{}, fmt.Errorf("only one of OLD and NEW can be stdin")
	}
	oldText, err := readInput(cmd, args[0])
	if err != nil {
		return textPair{}, err
	}
	newText, err := readInput(cmd, args[1])
	if err != nil {
		return textPair{}, err
	}
	return textPair{oldName: args[0], newName: args[1], oldText: oldText, newText: newText}, nil
}

func loadFromPatch(cmd *cobra.Command, path, file string) (textPair, error) {
	raw, err := readInput(cmd, path)
	if err != nil {
		return textPair{}, err
	}
	rows, err := patch.ParseUnifiedDiff([]byte(raw))
	if err != nil {
		return textPair{}, err
	}
	files := patch.Files(rows)
	if len(files) == 0 {
		return textPair{}, fmt.Errorf("%s: patch has no hunks", path)
	}
	if file == "" {
		file = files[0]
	} else if !slices.Contains(files, file) {
		return textPair{}, fmt.Errorf("%s not in patch (files: %s)", file, strings.Join(files, ", "))
	}
	oldText, newText := patch.Texts(rows, file)
	return textPair{oldName: "a/" + file, newName: "b/" + file, oldText: oldText, newText: newText}, nil
}

// loadFromRev compares path at rev with the working tree. Without a path the
// work tree must have exactly one changed file.
func loadFromRev(ctx context.Context, rev, path string) (textPair, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return textPair{}, err
	}
	if path == "" {
		root, err := git.RepoRoot(ctx, cwd)
		if err != nil {
			return textPair{}, err
		}
		changed, err := git.ChangedFiles(ctx, root)
		if err != nil {
			return textPair{}, err
		}
		switch len(changed) {
		case 0:
			return textPair{}, fmt.Errorf("no changed files; pass a PATH")
		case 1:
			cwd, path = root, changed[0].Path
		default:
			names := make([]string, len(changed))
			for i, f := range changed {
				names[i] = f.Path
			}
			return textPair{}, fmt.Errorf("%d changed files, pass one of: %s", len(changed), strings.Join(names, ", "))
		}
	}

	revs, err := git.LoadRevisions(ctx, cwd, rev, path)
	if err != nil {
		return textPair{}, err
	}
	return textPair{
		oldName: rev + ":" + path,
		newName: path,
		oldText: revs.Old,
		newText: revs.New,
	}, nil
}
