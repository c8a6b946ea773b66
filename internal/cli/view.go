package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"redline/internal/app"
	"redline/internal/pretty"
)

func newViewCmd() *cobra.Command {
	var (
		src          sourceFlags
		sectionsPath string
		fold         bool
		rawTokens    bool
	)
	cmd := &cobra.Command{
		Use:   "view OLD NEW",
		Short: "Open the side-by-side comparison viewer",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			pair, err := src.load(cmd, args)
			if err != nil {
				return err
			}

			in := app.Input{
				OldName:   pair.oldName,
				NewName:   pair.newName,
				OldText:   pair.oldText,
				NewText:   pair.newText,
				DiffOpts:  e.diffOptions(fold, rawTokens),
				Formatter: pretty.NewFormatter(e.cfg.Render.Placeholder),
			}
			if sectionsPath != "" {
				md, err := readInput(cmd, sectionsPath)
				if err != nil {
					return err
				}
				report, dropped := e.parseReport(e.cfg.Sections.Delimiter, md)
				in.Report, in.Dropped = report, len(dropped)
			}

			program := tea.NewProgram(app.NewModel(in), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&sectionsPath, "sections", "", "comparison report to show below the texts")
	cmd.Flags().BoolVar(&fold, "fold", false, "compare words case-insensitively")
	cmd.Flags().BoolVar(&rawTokens, "raw-tokens", false, "keep empty words produced by leading or trailing whitespace")
	return cmd
}
