package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"redline/internal/config"
	"redline/internal/present"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(newConfigOptionsCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every configuration key with its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.Options()
			if getEnv(cmd).jsonOutput() {
				return present.WriteJSON(cmd.OutOrStdout(), opts)
			}
			rows := make([][]string, 0, len(opts))
			for _, o := range opts {
				rows = append(rows, []string{o.Key, fmt.Sprintf("%v", o.Default), o.Comment})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("KEY", "DEFAULT", "DESCRIPTION").
				Rows(rows...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			cfg := e.cfg
			if cfg.Server.Token != "" {
				cfg.Server.Token = "********"
			}
			if e.jsonOutput() {
				return present.WriteJSON(cmd.OutOrStdout(), cfg)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
