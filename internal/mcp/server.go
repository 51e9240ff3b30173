// Package mcp provides a Model Context Protocol server for commitviz.
// It exposes chart generation, data collection, and validation as MCP tools
// that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/viz"
)

// NewServer creates an MCP server with all commitviz tools registered.
func NewServer(version string, service *viz.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "commitviz",
		Version: version,
	}, nil)
	registerTools(server, service)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write files
// (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all commitviz tools to the server.
func registerTools(server *mcp.Server, service *viz.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_hour_bar_chart",
		Description: "Collect commit data and render a bar chart of commits by hour of day (0-23) as a PNG image.",
		Annotations: writeAnnotations(),
	}, handleChart(service, chart.HourBar))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_day_pie_chart",
		Description: "Collect commit data and render a pie chart of commits by day of week as a PNG image.",
		Annotations: writeAnnotations(),
	}, handleChart(service, chart.DayPie))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_month_pie_chart",
		Description: "Collect commit data and render a pie chart of commits by month as a PNG image.",
		Annotations: writeAnnotations(),
	}, handleChart(service, chart.MonthPie))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_combined_day_month_chart",
		Description: "Collect commit data and render side-by-side day-of-week and month pie charts as one PNG image.",
		Annotations: writeAnnotations(),
	}, handleChart(service, chart.DayMonthCombined))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_commit_data",
		Description: "Validate a collected commit count file and return its statistics: record count, total commits, max/min/average per period.",
		Annotations: readOnlyAnnotations(),
	}, handleValidate(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "collect_commit_data",
		Description: "Aggregate the git commit history into hour, day-of-week, and month count files.",
		Annotations: writeAnnotations(),
	}, handleCollect(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_schema_org_data",
		Description: "Generate schema.org JSON-LD documents describing the toolkit and its datasets.",
		Annotations: writeAnnotations(),
	}, handleSchemas(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "repo_status",
		Description: "Show repository and workspace state: repo name, branch, HEAD, and collected data files.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(service))
}
