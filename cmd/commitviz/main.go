// Package main provides the entry point for the commitviz CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/config"
	"github.com/redcedar/commitviz/internal/envfile"
	"github.com/redcedar/commitviz/internal/output"
	"github.com/redcedar/commitviz/internal/store"
	"github.com/redcedar/commitviz/internal/viz"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the commitviz CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitviz",
		Short: "Git commit visualization toolkit",
		Long: `Commitviz analyzes when a repository's commits happen and renders the
patterns as charts.

It aggregates the git log into per-hour, per-day-of-week, and per-month
commit counts, validates the collected data, and renders bar and pie
charts as high-resolution PNG images. Results can be described as
schema.org JSON-LD and recorded in an optional SQLite database.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'commitviz --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("data-dir", "", "Directory for commit count files (overrides settings)")
	cmd.PersistentFlags().String("output-dir", "", "Directory for chart images (overrides settings)")
	cmd.PersistentFlags().String("database", "", "SQLite database path (overrides settings)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local (per-repo override, gitignored)
//  2. $CWD/.env       (per-repo)
//  3. ~/.config/commitviz/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newChartCmd(), "core")
	addGroupedCommand(cmd, newCollectCmd(), "core")

	addGroupedCommand(cmd, newValidateCmd(), "query")
	addGroupedCommand(cmd, newStatusCmd(), "query")
	addGroupedCommand(cmd, newHistoryCmd(), "query")

	addGroupedCommand(cmd, newSchemaCmd(), "agent")
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// newService loads settings, applies flag overrides, and opens the store
// when a database is configured. The returned cleanup closes the store.
func newService(cmd *cobra.Command) (*viz.Service, func(), error) {
	settings, err := config.Load(config.Dir())
	if err != nil {
		return nil, nil, output.NewSystemErrorWithCause("loading settings", err)
	}

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		settings.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		settings.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("database"); v != "" {
		settings.Database = v
	}

	var st *store.Store
	cleanup := func() {}
	if settings.Database != "" {
		st, err = store.Open(settings.Database)
		if err != nil {
			return nil, nil, output.NewSystemErrorWithCause("opening database", err)
		}
		cleanup = func() { _ = st.Close() }
	}

	return viz.New(settings, st, buildVersion()), cleanup, nil
}
