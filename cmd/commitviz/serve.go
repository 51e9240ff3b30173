// Package main provides the entry point for the commitviz CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	commitvizmcp "github.com/redcedar/commitviz/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run commitviz as a Model Context Protocol (MCP) server over stdio.

This exposes commitviz operations as MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "commitviz": {
        "command": "commitviz",
        "args": ["serve"]
      }
    }
  }

Available tools: generate_hour_bar_chart, generate_day_pie_chart,
generate_month_pie_chart, generate_combined_day_month_chart,
validate_commit_data, collect_commit_data, generate_schema_org_data,
repo_status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, cleanup, err := newService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			server := commitvizmcp.NewServer(buildVersion(), service)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
