package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"redline/internal/present"
	"redline/internal/wordfreq"
)

func newDiffCmd() *cobra.Command {
	var (
		src       sourceFlags
		fold      bool
		rawTokens bool
		inline    bool
	)
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "List words added and removed between two texts",
		Long: `Compare two texts by word frequency. A word appearing more often in NEW is
listed as added once per extra occurrence; one appearing more often in OLD is
listed as removed. Word order is not compared.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			pair, err := src.load(cmd, args)
			if err != nil {
				return err
			}

			opts := e.diffOptions(fold, rawTokens)
			res := wordfreq.Diff(pair.oldText, pair.newText, opts...)
			added, removed := res.Counts()
			e.log.Debug("word diff",
				zap.String("old", pair.oldName),
				zap.String("new", pair.newName),
				zap.Int("added", added),
				zap.Int("removed", removed),
			)

			out := cmd.OutOrStdout()
			switch {
			case e.jsonOutput():
				return present.WriteJSON(out, res)
			case inline:
				return present.WriteInline(out, pair.oldText, pair.newText, res, e.presentOptions(), opts...)
			}
			return present.WriteDiff(out, res, e.presentOptions())
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&fold, "fold", false, "compare words case-insensitively")
	cmd.Flags().BoolVar(&rawTokens, "raw-tokens", false, "keep empty words produced by leading or trailing whitespace")
	cmd.Flags().BoolVar(&inline, "inline", false, "print both texts with changed words marked")
	return cmd
}
