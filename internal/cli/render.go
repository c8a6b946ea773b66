package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"redline/internal/present"
	"redline/internal/pretty"
)

func newRenderCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "render FILE|-",
		Short: "Render an AI text result as safe HTML",
		Long: `Render free text as HTML headings, lists and paragraphs. With --json the
input is a JSON document and every key becomes a titled section.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			in, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			f := pretty.NewFormatter(e.cfg.Render.Placeholder)
			var html string
			if asJSON {
				v, err := pretty.DecodeValue([]byte(in))
				if err != nil {
					return fmt.Errorf("decode %s: %w", args[0], err)
				}
				html = f.TreeHTML(pretty.Tree(v))
			} else {
				html = f.HTML(in)
			}

			if e.jsonOutput() {
				return present.WriteJSON(cmd.OutOrStdout(), map[string]string{"html": html})
			}
			return present.WriteHTML(cmd.OutOrStdout(), html, e.presentOptions())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "input is a JSON document")
	return cmd
}
