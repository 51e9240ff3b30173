// Package viz orchestrates the commit visualization pipeline: collecting
// git data, validating count files, rendering charts, and recording results.
// Both the CLI commands and the MCP tools are thin wrappers around Service.
package viz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/collect"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/config"
	"github.com/redcedar/commitviz/internal/git"
	"github.com/redcedar/commitviz/internal/output"
	"github.com/redcedar/commitviz/internal/render"
	"github.com/redcedar/commitviz/internal/schemaorg"
	"github.com/redcedar/commitviz/internal/store"
)

// Service ties the pipeline together. Store is nil when persistence is
// not configured; every store interaction is skipped in that case.
type Service struct {
	Settings config.Settings
	Store    *store.Store
	Version  string
}

// New builds a Service from loaded settings. The store stays nil unless
// a database path is configured.
func New(settings config.Settings, st *store.Store, version string) *Service {
	return &Service{Settings: settings, Store: st, Version: version}
}

// ChartRequest describes one chart generation run.
type ChartRequest struct {
	Kind            chart.Kind
	Title           string
	OutputName      string
	RepositoryLabel string
	Style           *chart.PlotStyle
	// Collect runs git log aggregation before loading data files.
	Collect bool
}

// ChartResult reports a completed chart generation run.
type ChartResult struct {
	Configuration chart.Configuration `json:"configuration"`
	OutputFile    string              `json:"output_file"`
	Commits       int                 `json:"commits,omitempty"`
	SchemaFile    string              `json:"schema_file,omitempty"`
	Warnings      []string            `json:"warnings,omitempty"`
}

// GenerateChart runs the full pipeline for one chart: optional collection,
// data loading, rendering, schema emission, and store recording.
//
// Schema and store failures degrade to warnings; only collection, data, and
// render failures abort the run.
func (s *Service) GenerateChart(ctx context.Context, req ChartRequest) (*ChartResult, error) {
	label := req.RepositoryLabel
	if label == "" && s.Settings.AutoDetect() && git.IsRepo() {
		if name, err := git.RepoName(); err == nil {
			label = name
		}
	}

	style := s.Settings.PlotStyle()
	if req.Style != nil {
		style = *req.Style
	}

	cfg, err := chart.NewConfiguration(req.Kind, chart.Options{
		Title:           req.Title,
		OutputName:      req.OutputName,
		RepositoryLabel: label,
		Style:           &style,
	})
	if err != nil {
		return nil, asUserError(err)
	}

	result := &ChartResult{Configuration: cfg}

	if req.Collect {
		collected, err := collect.Collector{DataDir: s.Settings.DataDir}.Collect(ctx)
		if err != nil {
			return nil, err
		}
		result.Commits = collected.Commits
	}

	inputs, err := s.loadInputs(cfg.Kind)
	if err != nil {
		return nil, err
	}

	path, err := render.Renderer{OutputDir: s.Settings.OutputDir}.Render(cfg, inputs)
	if err != nil {
		return nil, asUserError(err)
	}
	result.OutputFile = path

	schemaPath := filepath.Join(s.Settings.OutputDir, "schemas", cfg.OutputName+".jsonld")
	if err := schemaorg.Save(schemaorg.CreativeWork(cfg.Kind, label, path), schemaPath); err != nil {
		result.Warnings = append(result.Warnings, "schema not written: "+err.Error())
	} else {
		result.SchemaFile = schemaPath
	}

	if s.Store != nil && label != "" {
		if err := s.recordChart(label, cfg, path); err != nil {
			result.Warnings = append(result.Warnings, "chart not recorded: "+err.Error())
		}
	}

	return result, nil
}

func (s *Service) recordChart(label string, cfg chart.Configuration, path string) error {
	repoID, err := s.Store.UpsertRepository(label, git.RemoteURL(), "", 0)
	if err != nil {
		return err
	}
	return s.Store.RecordChart(repoID, cfg, path)
}

// loadInputs reads the data files the chart kind consumes.
func (s *Service) loadInputs(kind chart.Kind) (render.Inputs, error) {
	var in render.Inputs
	for _, dataKind := range kind.DataKinds() {
		records, err := commitdata.LoadKind(s.Settings.DataDir, dataKind)
		if err != nil {
			var notFound *commitdata.NotFoundError
			if errors.As(err, &notFound) {
				return render.Inputs{}, output.NewUserErrorWithCause(
					fmt.Sprintf("no %s data collected yet, run 'commitviz collect' first", dataKind), err)
			}
			return render.Inputs{}, asUserError(err)
		}
		switch dataKind {
		case commitdata.Hour:
			in.Hour = records
		case commitdata.Day:
			in.Day = records
		case commitdata.Month:
			in.Month = records
		}
	}
	return in, nil
}

// ValidationResult reports a validated data file.
type ValidationResult struct {
	Path  string                `json:"path"`
	Kind  commitdata.PeriodKind `json:"period_kind"`
	Stats commitdata.Stats      `json:"stats"`
}

// ValidateFile validates one explicit data file.
func (s *Service) ValidateFile(path string) (*ValidationResult, error) {
	records, err := commitdata.LoadFile(path)
	if err != nil {
		return nil, asUserError(err)
	}
	return validationResult(path, records)
}

// ValidateKind validates the standard data file for a period kind.
func (s *Service) ValidateKind(kind commitdata.PeriodKind) (*ValidationResult, error) {
	records, err := commitdata.LoadKind(s.Settings.DataDir, kind)
	if err != nil {
		return nil, asUserError(err)
	}
	return validationResult(filepath.Join(s.Settings.DataDir, commitdata.FileName(kind)), records)
}

func validationResult(path string, records []commitdata.Record) (*ValidationResult, error) {
	result := &ValidationResult{Path: path, Stats: commitdata.Summarize(records)}
	if len(records) > 0 {
		result.Kind = records[0].Kind
	}
	return result, nil
}

// CollectData runs git log aggregation and writes the data files.
func (s *Service) CollectData(ctx context.Context) (collect.Result, error) {
	return collect.Collector{DataDir: s.Settings.DataDir}.Collect(ctx)
}

// GenerateSchemas writes the full schema.org document set for the
// repository into {output_dir}/schemas.
func (s *Service) GenerateSchemas(repositoryName string) (map[string]string, error) {
	if repositoryName == "" && s.Settings.AutoDetect() && git.IsRepo() {
		if name, err := git.RepoName(); err == nil {
			repositoryName = name
		}
	}
	return schemaorg.GenerateAll(repositoryName, s.Version, filepath.Join(s.Settings.OutputDir, "schemas"))
}

// DataFileStatus describes one expected data file.
type DataFileStatus struct {
	Kind    commitdata.PeriodKind `json:"period_kind"`
	Path    string                `json:"path"`
	Present bool                  `json:"present"`
	Records int                   `json:"records"`
}

// Status is the repository and workspace overview.
type Status struct {
	Repository string           `json:"repository,omitempty"`
	Branch     string           `json:"branch,omitempty"`
	Head       string           `json:"head,omitempty"`
	DataDir    string           `json:"data_dir"`
	OutputDir  string           `json:"output_dir"`
	Database   string           `json:"database,omitempty"`
	DataFiles  []DataFileStatus `json:"data_files"`
}

// WorkspaceStatus reports the repository, the data files on disk, and the
// configured directories. Git failures leave the repo fields empty rather
// than failing the whole status.
func (s *Service) WorkspaceStatus(ctx context.Context) (*Status, error) {
	status := &Status{
		DataDir:   s.Settings.DataDir,
		OutputDir: s.Settings.OutputDir,
		Database:  s.Settings.Database,
	}

	if git.IsRepo() {
		if name, err := git.RepoName(); err == nil {
			status.Repository = name
		}
		if branch, err := git.CurrentBranch(); err == nil {
			status.Branch = branch
		}
		if head, err := git.HEAD(); err == nil {
			status.Head = head
		}
	}

	for _, kind := range []commitdata.PeriodKind{commitdata.Hour, commitdata.Day, commitdata.Month} {
		fileStatus := DataFileStatus{
			Kind: kind,
			Path: filepath.Join(s.Settings.DataDir, commitdata.FileName(kind)),
		}
		if _, err := os.Stat(fileStatus.Path); err == nil {
			fileStatus.Present = true
			if records, err := commitdata.LoadKind(s.Settings.DataDir, kind); err == nil {
				fileStatus.Records = len(records)
			}
		}
		status.DataFiles = append(status.DataFiles, fileStatus)
	}
	return status, nil
}

// asUserError maps domain validation failures to user-facing exit errors.
// Already-typed exit errors and unexpected failures pass through.
func asUserError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var fieldErr *chart.FieldError
	var rangeErr *commitdata.RangeError
	var parseErr *commitdata.ParseError
	var kindErr *commitdata.KindError
	var notFound *commitdata.NotFoundError
	switch {
	case errors.Is(err, chart.ErrNoData),
		errors.As(err, &fieldErr),
		errors.As(err, &rangeErr),
		errors.As(err, &parseErr),
		errors.As(err, &kindErr),
		errors.As(err, &notFound):
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return err
}
