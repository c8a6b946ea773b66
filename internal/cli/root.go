package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"redline/internal/config"
	"redline/internal/logging"
	"redline/internal/present"
	"redline/internal/wordfreq"
)

type ctxKey string

const envKey ctxKey = "env"

// env is the resolved configuration shared by every subcommand.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	color bool
	width int // terminal width, 0 when not a terminal
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		envFile string
		output  string
		color   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "redline",
		Short:         "redline: compare document revisions and render review reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Existing environment variables win over the file.
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load %s: %w", envFile, err)
			}

			v := viper.New()
			if cmd.Flags().Changed("output") {
				v.Set("output", output)
			}
			if cmd.Flags().Changed("color") {
				v.Set("color", color)
			}
			if verbose {
				v.Set("log.level", "debug")
			}
			cfg, err := config.Load(v, cfgPath)
			if err != nil {
				return err
			}

			log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug("loaded config", zap.String("path", used))
			}

			e := &env{
				cfg:   cfg,
				log:   log,
				color: colorEnabled(cfg.Color, cmd.OutOrStdout()),
				width: terminalWidth(cmd.OutOrStdout()),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey, e))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml|json)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file supplying REDLINE_* variables")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	cmd.PersistentFlags().StringVar(&color, "color", "auto", "colour: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newSectionsCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newViewCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getEnv(cmd *cobra.Command) *env {
	v := cmd.Context().Value(envKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: config not loaded")
		os.Exit(1)
	}
	return v.(*env)
}

func (e *env) jsonOutput() bool {
	return e.cfg.Output == "json"
}

func (e *env) presentOptions() present.Options {
	return present.Options{
		Color:        e.color,
		Width:        e.renderWidth(),
		Style:        e.cfg.Render.Style,
		GlamourStyle: e.cfg.Render.GlamourStyle,
	}
}

// renderWidth is the configured wrap width, narrowed to fit the terminal.
func (e *env) renderWidth() int {
	if e.width > 0 && e.width < e.cfg.Render.Width {
		return e.width
	}
	return e.cfg.Render.Width
}

// diffOptions merges the configured tokenizer with per-command overrides.
func (e *env) diffOptions(fold, raw bool) []wordfreq.Option {
	mode := e.cfg.TokenMode()
	if raw {
		mode = wordfreq.TokenRaw
	}
	opts := []wordfreq.Option{wordfreq.WithTokenMode(mode)}
	if fold || e.cfg.Tokens.Fold {
		opts = append(opts, wordfreq.WithFold())
	}
	return opts
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
