// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/git"
	"github.com/redcedar/commitviz/internal/output"
)

// newCollectCmd creates the collect command.
func newCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Aggregate git history into commit count files",
		Long: `Aggregate the git commit history into per-period count files.

Writes commit_counts_hour.txt, commit_counts_day.txt, and
commit_counts_month.txt into the data directory. Each line is
"period count"; periods with no commits are omitted.

Examples:
  commitviz collect
  commitviz collect --data-dir ./data --json`,
		RunE: runCollect,
	}
}

// runCollect executes the collect command.
func runCollect(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if !git.IsRepo() {
		err := output.NewUserError("not in a git repository")
		printer.Error(err)
		return err
	}

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	result, err := service.CollectData(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Success(map[string]any{
		"message": fmt.Sprintf("Collected %d commits into %d data files", result.Commits, len(result.Files)),
	})
	for kind, path := range result.Files {
		printer.KeyValue(kind.String(), path)
	}
	return nil
}
