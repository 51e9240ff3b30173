// Package schemaorg builds schema.org JSON-LD documents describing the
// toolkit, its datasets, and the charts it produces.
package schemaorg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/output"
)

const (
	schemaContext = "https://schema.org"
	licenseURL    = "https://opensource.org/licenses/MIT"
	projectURL    = "https://github.com/redcedar/commitviz"
)

// now is swapped out in tests for stable timestamps.
var now = time.Now

// Document is a JSON-LD object ready for serialization.
type Document map[string]any

// Dataset type keys accepted by Dataset.
const (
	DatasetCommitAnalysis = "commit_analysis"
	DatasetHourly         = "hourly"
	DatasetDaily          = "daily"
	DatasetMonthly        = "monthly"
)

func creator() Document {
	return Document{
		"@type": "Organization",
		"name":  "commitviz contributors",
		"url":   projectURL,
	}
}

// SoftwareApplication describes the toolkit itself. A repository name scopes
// the name and description to that repository.
func SoftwareApplication(repositoryName, version string) Document {
	name := "Git Commit Visualization Utilities"
	description := "A toolkit for analyzing and visualizing Git commit patterns through charts"
	if repositoryName != "" {
		name = name + " - " + repositoryName
		description = fmt.Sprintf("Commit pattern analysis and visualization for %s repository", repositoryName)
	}
	if version == "" {
		version = "1.0.0"
	}

	return Document{
		"@context":               schemaContext,
		"@type":                  "SoftwareApplication",
		"name":                   name,
		"description":            description,
		"applicationCategory":    "DeveloperApplication",
		"applicationSubCategory": "Data Visualization",
		"operatingSystem":        []string{"macOS", "Linux", "Windows"},
		"programmingLanguage":    "Go",
		"softwareRequirements":   []string{"Git"},
		"author":                 creator(),
		"creator":                creator(),
		"license":                licenseURL,
		"url":                    projectURL,
		"featureList": []string{
			"Hourly commit distribution (bar charts)",
			"Day of week commit patterns (pie charts)",
			"Monthly commit activity (pie charts)",
			"Combined day/month visualizations",
			"High-resolution PNG charts (300 DPI)",
			"Repository-specific file naming",
			"MCP server integration",
		},
		"softwareVersion": version,
		"dateModified":    now().Format(time.RFC3339),
		"keywords": []string{
			"git", "commit analysis", "data visualization", "charts",
			"development tools", "repository analytics", "MCP server",
		},
	}
}

var datasetNames = map[string]string{
	DatasetCommitAnalysis: "Git Commit Analysis Data",
	DatasetHourly:         "Hourly Commit Distribution Data",
	DatasetDaily:          "Daily Commit Pattern Data",
	DatasetMonthly:        "Monthly Commit Activity Data",
}

var datasetDescriptions = map[string]string{
	DatasetCommitAnalysis: "Structured commit data extracted from Git repositories for pattern analysis",
	DatasetHourly:         "Commit frequency data aggregated by hour of day (0-23)",
	DatasetDaily:          "Commit frequency data aggregated by day of week (Sunday-Saturday)",
	DatasetMonthly:        "Commit frequency data aggregated by month (January-December)",
}

// Dataset describes one commit data file. filePath and recordCount are
// optional; when filePath names an existing file a distribution entry with
// its size is included.
func Dataset(dataType, repositoryName, filePath string, recordCount int) Document {
	name, ok := datasetNames[dataType]
	if !ok {
		name = "Git Repository Data"
	}
	description, ok := datasetDescriptions[dataType]
	if !ok {
		description = "Git repository analysis data"
	}
	if repositoryName != "" {
		name = name + " - " + repositoryName
		description = fmt.Sprintf("%s for %s repository", description, repositoryName)
	}

	timestamp := now().Format(time.RFC3339)
	doc := Document{
		"@context":    schemaContext,
		"@type":       "Dataset",
		"name":        name,
		"description": description,
		"keywords": []string{
			"git commits", "version control", "software development",
			"time series data", "repository analytics",
		},
		"creator":        creator(),
		"dateCreated":    timestamp,
		"dateModified":   timestamp,
		"license":        licenseURL,
		"encodingFormat": "text/plain",
		"variableMeasured": []Document{
			{"@type": "PropertyValue", "name": "commit_hour", "description": "Hour of day when commit was made (0-23)"},
			{"@type": "PropertyValue", "name": "commit_day", "description": "Day of week when commit was made (0-6)"},
			{"@type": "PropertyValue", "name": "commit_month", "description": "Month when commit was made (1-12)"},
		},
	}

	if filePath != "" {
		if info, err := os.Stat(filePath); err == nil {
			distribution := Document{
				"@type":          "DataDownload",
				"encodingFormat": "text/plain",
				"contentSize":    fmt.Sprintf("%d bytes", info.Size()),
				"contentUrl":     filePath,
			}
			if recordCount > 0 {
				distribution["numberOfRecords"] = recordCount
			}
			doc["distribution"] = distribution
		}
	}
	return doc
}

var chartNames = map[chart.Kind]string{
	chart.HourBar:          "Hourly Commit Distribution Chart",
	chart.DayPie:           "Daily Commit Pattern Chart",
	chart.MonthPie:         "Monthly Commit Activity Chart",
	chart.DayMonthCombined: "Combined Day/Month Commit Chart",
}

var chartDescriptions = map[chart.Kind]string{
	chart.HourBar:          "Bar chart showing commit frequency by hour of day",
	chart.DayPie:           "Pie chart showing commit distribution by day of week",
	chart.MonthPie:         "Pie chart showing commit distribution by month",
	chart.DayMonthCombined: "Combined visualization of daily and monthly commit patterns",
}

// CreativeWork describes one generated chart image.
func CreativeWork(kind chart.Kind, repositoryName, filePath string) Document {
	name := chartNames[kind]
	description := chartDescriptions[kind]
	if repositoryName != "" {
		name = name + " - " + repositoryName
		description = fmt.Sprintf("%s for %s repository", description, repositoryName)
	}

	basedOn := "Git Commit Data"
	if repositoryName != "" {
		basedOn = basedOn + " - " + repositoryName
	}

	doc := Document{
		"@context":       schemaContext,
		"@type":          "CreativeWork",
		"name":           name,
		"description":    description,
		"creator":        creator(),
		"dateCreated":    now().Format(time.RFC3339),
		"license":        licenseURL,
		"encodingFormat": "image/png",
		"genre":          "Data Visualization",
		"keywords": []string{
			"data visualization", "git commits", "charts",
			"repository analytics", "software development metrics",
		},
		"isBasedOn": Document{"@type": "Dataset", "name": basedOn},
	}

	if filePath != "" {
		if info, err := os.Stat(filePath); err == nil {
			doc["contentSize"] = fmt.Sprintf("%d bytes", info.Size())
			doc["contentUrl"] = filePath
		}
	}
	return doc
}

// MCPServer describes the stdio MCP server component.
func MCPServer() Document {
	return Document{
		"@context":               schemaContext,
		"@type":                  "SoftwareApplication",
		"name":                   "Git Visualization MCP Server",
		"description":            "Model Context Protocol server for programmatic access to git commit visualization tools",
		"applicationCategory":    "DeveloperApplication",
		"applicationSubCategory": "API Server",
		"programmingLanguage":    "Go",
		"author":                 creator(),
		"featureList": []string{
			"generate_hour_bar_chart - Create hourly bar chart",
			"generate_day_pie_chart - Create day of week pie chart",
			"generate_month_pie_chart - Create monthly pie chart",
			"generate_combined_day_month_chart - Create combined day/month chart",
		},
		"license":     licenseURL,
		"dateCreated": now().Format(time.RFC3339),
		"keywords": []string{
			"MCP server", "Model Context Protocol", "API",
			"git visualization", "automation tools",
		},
	}
}

// Save writes a document as indented JSON-LD, creating parent directories.
func Save(doc Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return output.NewSystemErrorWithCause("creating schema directory", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("encoding schema document", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return output.NewSystemErrorWithCause("writing schema file "+path, err)
	}
	return nil
}

// GenerateAll writes the full document set into outputDir and returns the
// written paths keyed by schema name.
func GenerateAll(repositoryName, version, outputDir string) (map[string]string, error) {
	docs := map[string]Document{
		"software_application": SoftwareApplication(repositoryName, version),
		"commit_dataset":       Dataset(DatasetCommitAnalysis, repositoryName, "", 0),
		"hourly_dataset":       Dataset(DatasetHourly, repositoryName, "", 0),
		"daily_dataset":        Dataset(DatasetDaily, repositoryName, "", 0),
		"monthly_dataset":      Dataset(DatasetMonthly, repositoryName, "", 0),
		"mcp_server":           MCPServer(),
	}

	paths := make(map[string]string, len(docs))
	for name, doc := range docs {
		filename := name + ".jsonld"
		if repositoryName != "" {
			filename = name + "_" + slug(repositoryName) + ".jsonld"
		}
		path := filepath.Join(outputDir, filename)
		if err := Save(doc, path); err != nil {
			return nil, err
		}
		paths[name] = path
	}
	return paths, nil
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
