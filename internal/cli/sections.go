package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"redline/internal/present"
	"redline/internal/sections"
)

func newSectionsCmd() *cobra.Command {
	var (
		match     string
		delimiter string
	)
	cmd := &cobra.Command{
		Use:   "sections FILE|-",
		Short: "Parse a comparison report into sections and changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			md, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			if delimiter == "" {
				delimiter = e.cfg.Sections.Delimiter
			}
			report, dropped := e.parseReport(delimiter, md)
			if match != "" {
				report = report.Filter(match)
			}
			e.log.Debug("parsed report",
				zap.Int("sections", report.TotalSections),
				zap.Int("items", report.ItemCount()),
				zap.Int("dropped", len(dropped)),
			)

			if e.jsonOutput() {
				return present.WriteJSON(cmd.OutOrStdout(), report)
			}
			return present.WriteSections(cmd.OutOrStdout(), report, e.presentOptions())
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "keep only sections whose name fuzzy-matches this pattern")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "section delimiter (default from config)")
	return cmd
}

// parseReport parses md and logs every line the parser could not place.
func (e *env) parseReport(delimiter, md string) (sections.Comparison, []sections.Dropped) {
	report, dropped := sections.NewParser(delimiter).ParseReport(md)
	for _, d := range dropped {
		e.log.Info("dropped line",
			zap.String("section", d.Section),
			zap.String("reason", d.Reason),
			zap.String("line", d.Line),
		)
	}
	return report, dropped
}
