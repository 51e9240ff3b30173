// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/output"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show repository and workspace state",
		Long: `Show the current repository and commitviz workspace state.

Displays repository info (name, branch, HEAD), the configured data and
output directories, and which commit count files exist with their
record counts.

Examples:
  commitviz status
  commitviz status --json`,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	status, err := service.WorkspaceStatus(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(status)
	}

	if status.Repository != "" {
		printer.Section("Repository")
		printer.KeyValue("Name", status.Repository)
		printer.KeyValue("Branch", status.Branch)
		printer.KeyValue("HEAD", status.Head)
	} else {
		printer.Println("Not in a git repository")
	}

	printer.Section("Workspace")
	printer.KeyValue("Data dir", status.DataDir)
	printer.KeyValue("Output dir", status.OutputDir)
	if status.Database != "" {
		printer.KeyValue("Database", status.Database)
	}

	printer.Section("Data files")
	rows := make([][]string, 0, len(status.DataFiles))
	for _, f := range status.DataFiles {
		state := "missing"
		if f.Present {
			state = fmt.Sprintf("%d records", f.Records)
		}
		rows = append(rows, []string{f.Kind.String(), f.Path, state})
	}
	printer.Table([]string{"KIND", "PATH", "STATE"}, rows)
	return nil
}
