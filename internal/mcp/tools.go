package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/viz"
)

// --- Chart tools ---

// ChartInput is the shared input for the chart generation tools.
type ChartInput struct {
	RepositoryName string `json:"repository_name,omitempty" jsonschema:"repository label used in the title and file name"`
	Title          string `json:"title,omitempty"           jsonschema:"explicit chart title, overrides the derived default"`
	OutputFilename string `json:"output_filename,omitempty" jsonschema:"output file name stem without extension"`
	DPI            int    `json:"dpi,omitempty"             jsonschema:"image resolution in DPI (72-600)"`
	ColorPrimary   string `json:"color_primary,omitempty"   jsonschema:"primary color as #RRGGBB"`
	ColorSecondary string `json:"color_secondary,omitempty" jsonschema:"secondary color as #RRGGBB"`
}

// ChartOutput is the shared output for the chart generation tools.
type ChartOutput struct {
	OutputFile string   `json:"output_file"           jsonschema:"path of the written PNG image"`
	Title      string   `json:"title"                 jsonschema:"rendered chart title"`
	Commits    int      `json:"commits"               jsonschema:"number of commits collected"`
	SchemaFile string   `json:"schema_file,omitempty" jsonschema:"path of the written JSON-LD schema"`
	Warnings   []string `json:"warnings,omitempty"    jsonschema:"non-fatal warnings"`
}

func handleChart(service *viz.Service, kind chart.Kind) mcp.ToolHandlerFor[ChartInput, ChartOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChartInput) (*mcp.CallToolResult, ChartOutput, error) {
		style := service.Settings.PlotStyle()
		if input.DPI != 0 {
			style.Resolution = input.DPI
		}
		if input.ColorPrimary != "" {
			style.PrimaryColor = input.ColorPrimary
		}
		if input.ColorSecondary != "" {
			style.SecondaryColor = input.ColorSecondary
		}

		result, err := service.GenerateChart(ctx, viz.ChartRequest{
			Kind:            kind,
			Title:           input.Title,
			OutputName:      input.OutputFilename,
			RepositoryLabel: input.RepositoryName,
			Style:           &style,
			Collect:         true,
		})
		if err != nil {
			return nil, ChartOutput{}, fmt.Errorf("generating %s chart: %w", kind, err)
		}

		return nil, ChartOutput{
			OutputFile: result.OutputFile,
			Title:      result.Configuration.Title,
			Commits:    result.Commits,
			SchemaFile: result.SchemaFile,
			Warnings:   result.Warnings,
		}, nil
	}
}

// --- Validate tool ---

// ValidateInput selects which data file to validate.
type ValidateInput struct {
	DataType string `json:"data_type" jsonschema:"period kind to validate: hour, day, or month"`
}

// RecordOut is one validated period/count pair.
type RecordOut struct {
	Period int `json:"period" jsonschema:"period value"`
	Count  int `json:"count"  jsonschema:"commit count"`
}

// ValidateOutput is the validation report.
type ValidateOutput struct {
	Path         string      `json:"path"                    jsonschema:"validated file path"`
	Records      int         `json:"total_records"           jsonschema:"number of records"`
	TotalCommits int         `json:"total_commits"           jsonschema:"sum of all counts"`
	MaxCount     int         `json:"max_commits_per_period"  jsonschema:"largest count"`
	MinCount     int         `json:"min_commits_per_period"  jsonschema:"smallest count"`
	AvgCount     float64     `json:"avg_commits_per_period"  jsonschema:"mean count"`
	FirstRecords []RecordOut `json:"first_records,omitempty" jsonschema:"up to ten leading records"`
}

func handleValidate(service *viz.Service) mcp.ToolHandlerFor[ValidateInput, ValidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		kind, err := commitdata.ParseKind(input.DataType)
		if err != nil {
			return nil, ValidateOutput{}, err
		}

		result, err := service.ValidateKind(kind)
		if err != nil {
			return nil, ValidateOutput{}, fmt.Errorf("validating %s data: %w", kind, err)
		}

		out := ValidateOutput{
			Path:         result.Path,
			Records:      result.Stats.Records,
			TotalCommits: result.Stats.TotalCommits,
			MaxCount:     result.Stats.MaxCount,
			MinCount:     result.Stats.MinCount,
			AvgCount:     result.Stats.AvgCount,
		}
		// Stats carries only aggregates; reload for the record preview.
		records, err := commitdata.LoadKind(service.Settings.DataDir, kind)
		if err == nil {
			for i, r := range records {
				if i == 10 {
					break
				}
				out.FirstRecords = append(out.FirstRecords, RecordOut{Period: r.Period, Count: r.Count})
			}
		}
		return nil, out, nil
	}
}

// --- Collect tool ---

// CollectInput has no parameters.
type CollectInput struct{}

// CollectOutput reports a collection run.
type CollectOutput struct {
	Commits int               `json:"commits" jsonschema:"number of commits aggregated"`
	Files   map[string]string `json:"files"   jsonschema:"written data files keyed by period kind"`
}

func handleCollect(service *viz.Service) mcp.ToolHandlerFor[CollectInput, CollectOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CollectInput) (*mcp.CallToolResult, CollectOutput, error) {
		result, err := service.CollectData(ctx)
		if err != nil {
			return nil, CollectOutput{}, fmt.Errorf("collecting commit data: %w", err)
		}

		files := make(map[string]string, len(result.Files))
		for kind, path := range result.Files {
			files[kind.String()] = path
		}
		return nil, CollectOutput{Commits: result.Commits, Files: files}, nil
	}
}

// --- Schema tool ---

// SchemaInput selects the repository to describe.
type SchemaInput struct {
	RepositoryName string `json:"repository_name,omitempty" jsonschema:"repository name used in the documents, detected from git when omitted"`
}

// SchemaOutput lists the written schema files.
type SchemaOutput struct {
	Files map[string]string `json:"files" jsonschema:"written JSON-LD files keyed by schema name"`
}

func handleSchemas(service *viz.Service) mcp.ToolHandlerFor[SchemaInput, SchemaOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SchemaInput) (*mcp.CallToolResult, SchemaOutput, error) {
		files, err := service.GenerateSchemas(input.RepositoryName)
		if err != nil {
			return nil, SchemaOutput{}, fmt.Errorf("generating schemas: %w", err)
		}
		return nil, SchemaOutput{Files: files}, nil
	}
}

// --- Status tool ---

// StatusInput has no parameters.
type StatusInput struct{}

// DataFileOut describes one expected data file.
type DataFileOut struct {
	Kind    string `json:"period_kind" jsonschema:"period kind of the file"`
	Path    string `json:"path"        jsonschema:"expected file path"`
	Present bool   `json:"present"     jsonschema:"whether the file exists"`
	Records int    `json:"records"     jsonschema:"number of valid records"`
}

// StatusOutput is the workspace overview.
type StatusOutput struct {
	Repository string        `json:"repository,omitempty" jsonschema:"repository name"`
	Branch     string        `json:"branch,omitempty"     jsonschema:"current branch"`
	Head       string        `json:"head,omitempty"       jsonschema:"HEAD commit SHA"`
	DataDir    string        `json:"data_dir"             jsonschema:"directory holding data files"`
	OutputDir  string        `json:"output_dir"           jsonschema:"directory charts are written to"`
	DataFiles  []DataFileOut `json:"data_files"           jsonschema:"status of each expected data file"`
}

func handleStatus(service *viz.Service) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		status, err := service.WorkspaceStatus(ctx)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("reading status: %w", err)
		}

		out := StatusOutput{
			Repository: status.Repository,
			Branch:     status.Branch,
			Head:       status.Head,
			DataDir:    status.DataDir,
			OutputDir:  status.OutputDir,
		}
		for _, f := range status.DataFiles {
			out.DataFiles = append(out.DataFiles, DataFileOut{
				Kind:    f.Kind.String(),
				Path:    f.Path,
				Present: f.Present,
				Records: f.Records,
			})
		}
		return nil, out, nil
	}
}
