// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/output"
)

// newSchemaCmd creates the schema command.
func newSchemaCmd() *cobra.Command {
	var repoFlag string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate schema.org JSON-LD documents",
		Long: `Generate the schema.org JSON-LD document set describing the toolkit,
its datasets, and the MCP server.

Files are written into {output-dir}/schemas. The repository name scopes
the documents and their file names; it is detected from git when not
given.

Examples:
  commitviz schema
  commitviz schema --repo my-project --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, repoFlag)
		},
	}
	cmd.Flags().StringVarP(&repoFlag, "repo", "r", "", "Repository name (default detected from git)")
	return cmd
}

// runSchema executes the schema command.
func runSchema(cmd *cobra.Command, repo string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	files, err := service.GenerateSchemas(repo)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"files": files})
	}

	printer.Success(map[string]any{"message": fmt.Sprintf("Wrote %d schema files", len(files))})
	for name, path := range files {
		printer.KeyValue(name, path)
	}
	return nil
}
