// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/output"
	"github.com/redcedar/commitviz/internal/viz"
)

// chartFlags holds the chart command's flag values.
type chartFlags struct {
	title          string
	outputName     string
	repo           string
	configFile     string
	collect        bool
	dpi            int
	colorPrimary   string
	colorSecondary string
}

// newChartCmd creates the chart command.
func newChartCmd() *cobra.Command {
	var flags chartFlags
	cmd := &cobra.Command{
		Use:   "chart [kind]",
		Short: "Render a commit pattern chart as PNG",
		Long: `Render a commit pattern chart from collected data.

Kinds:
  hour_bar            Bar chart of commits by hour of day (0-23)
  day_pie             Pie chart of commits by day of week
  month_pie           Pie chart of commits by month
  day_month_combined  Day and month pies side by side

The title and file name derive from the kind and repository; explicit
--title and --output override them. With --config, the whole
configuration is read from a JSON file and the kind argument is omitted.

Examples:
  commitviz chart day_pie
  commitviz chart hour_bar --collect --repo my-project
  commitviz chart month_pie --dpi 150 --color-primary "#4e79a7"
  commitviz chart --config chart.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "Chart title (default derives from kind)")
	cmd.Flags().StringVarP(&flags.outputName, "output", "o", "", "Output file name stem without extension")
	cmd.Flags().StringVarP(&flags.repo, "repo", "r", "", "Repository label (default auto-detected from git)")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Read chart configuration from a JSON file")
	cmd.Flags().BoolVar(&flags.collect, "collect", false, "Run git log collection before rendering")
	cmd.Flags().IntVar(&flags.dpi, "dpi", 0, "Image resolution in DPI (72-600)")
	cmd.Flags().StringVar(&flags.colorPrimary, "color-primary", "", "Primary color as #RRGGBB")
	cmd.Flags().StringVar(&flags.colorSecondary, "color-secondary", "", "Secondary color as #RRGGBB")
	return cmd
}

// runChart executes the chart command.
func runChart(cmd *cobra.Command, args []string, flags chartFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	req, err := buildChartRequest(service, args, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := service.GenerateChart(cmd.Context(), req)
	if err != nil {
		printer.Error(err)
		return err
	}

	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Success(map[string]any{"message": "Chart saved to " + result.OutputFile})
	printer.KeyValue("Title", result.Configuration.Title)
	printer.KeyValue("Kind", result.Configuration.Kind.String())
	if result.Commits > 0 {
		printer.KeyValue("Commits", fmt.Sprintf("%d", result.Commits))
	}
	if result.SchemaFile != "" {
		printer.KeyValue("Schema", result.SchemaFile)
	}
	return nil
}

// buildChartRequest assembles the request from either a JSON config file
// or the kind argument plus flags.
func buildChartRequest(service *viz.Service, args []string, flags chartFlags) (viz.ChartRequest, error) {
	if flags.configFile != "" {
		data, err := os.ReadFile(flags.configFile)
		if err != nil {
			return viz.ChartRequest{}, output.NewUserErrorWithCause("reading config file "+flags.configFile, err)
		}
		cfg, err := chart.ConfigurationFromJSON(data)
		if err != nil {
			return viz.ChartRequest{}, output.NewUserErrorWithCause(err.Error(), err)
		}
		return viz.ChartRequest{
			Kind:            cfg.Kind,
			Title:           cfg.Title,
			OutputName:      cfg.OutputName,
			RepositoryLabel: cfg.RepositoryLabel,
			Style:           &cfg.Style,
			Collect:         flags.collect,
		}, nil
	}

	if len(args) != 1 {
		return viz.ChartRequest{}, output.NewUserError(
			"chart kind required: one of " + strings.Join(kindNames(), ", "))
	}
	kind, err := chart.ParseKindName(args[0])
	if err != nil {
		return viz.ChartRequest{}, output.NewUserErrorWithCause(err.Error(), err)
	}

	style := service.Settings.PlotStyle()
	if flags.dpi != 0 {
		style.Resolution = flags.dpi
	}
	if flags.colorPrimary != "" {
		style.PrimaryColor = flags.colorPrimary
	}
	if flags.colorSecondary != "" {
		style.SecondaryColor = flags.colorSecondary
	}

	return viz.ChartRequest{
		Kind:            kind,
		Title:           flags.title,
		OutputName:      flags.outputName,
		RepositoryLabel: flags.repo,
		Style:           &style,
		Collect:         flags.collect,
	}, nil
}

// kindNames lists the valid chart kind names.
func kindNames() []string {
	names := make([]string, len(chart.Kinds))
	for i, k := range chart.Kinds {
		names[i] = k.String()
	}
	return names
}
