// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/output"
)

// newHistoryCmd creates the history command group.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query the commit history database",
		Long: `Work with the optional SQLite history database.

Requires a database path in settings or via --database. 'sync' ingests
the git log; 'summary' and 'charts' read back what was stored.`,
	}
	cmd.AddCommand(newHistorySyncCmd())
	cmd.AddCommand(newHistorySummaryCmd())
	cmd.AddCommand(newHistoryChartsCmd())
	return cmd
}

// newHistorySyncCmd creates the history sync subcommand.
func newHistorySyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Ingest the git log into the database",
		Long: `Ingest the repository's full commit log and per-period summaries
into the database. Already-stored commits are skipped.

Examples:
  commitviz history sync --database commitviz.db`,
		RunE: runHistorySync,
	}
}

// runHistorySync executes the history sync subcommand.
func runHistorySync(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	result, err := service.SyncHistory(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printer.Success(map[string]any{
		"message": fmt.Sprintf("Synced %s: %d commits (%d new)",
			result.Repository, result.TotalCommits, result.NewCommits),
	})
	return nil
}

// newHistorySummaryCmd creates the history summary subcommand.
func newHistorySummaryCmd() *cobra.Command {
	var repoFlag string
	cmd := &cobra.Command{
		Use:   "summary <kind>",
		Short: "Show stored per-period commit counts",
		Long: `Show the stored per-period commit counts for a period kind
(hour, day, month).

Examples:
  commitviz history summary hour
  commitviz history summary day --repo my-project --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistorySummary(cmd, args, repoFlag)
		},
	}
	cmd.Flags().StringVarP(&repoFlag, "repo", "r", "", "Repository name (default detected from git)")
	return cmd
}

// runHistorySummary executes the history summary subcommand.
func runHistorySummary(cmd *cobra.Command, args []string, repo string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	kind, err := commitdata.ParseKind(args[0])
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	records, err := service.HistorySummary(repo, kind)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(records)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{fmt.Sprintf("%d", r.Period), fmt.Sprintf("%d", r.Count)})
	}
	printer.Table([]string{"PERIOD", "COMMITS"}, rows)
	return nil
}

// newHistoryChartsCmd creates the history charts subcommand.
func newHistoryChartsCmd() *cobra.Command {
	var repoFlag string
	var limitFlag int
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "List generated charts recorded in the database",
		Long: `List the chart metadata recorded for a repository, newest first.

Examples:
  commitviz history charts
  commitviz history charts --repo my-project --limit 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryCharts(cmd, repoFlag, limitFlag)
		},
	}
	cmd.Flags().StringVarP(&repoFlag, "repo", "r", "", "Repository name (default detected from git)")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of charts to list")
	return cmd
}

// runHistoryCharts executes the history charts subcommand.
func runHistoryCharts(cmd *cobra.Command, repo string, limit int) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	charts, err := service.ChartHistory(repo, limit)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(charts)
	}

	if len(charts) == 0 {
		printer.Println("No charts recorded yet")
		return nil
	}
	rows := make([][]string, 0, len(charts))
	for _, c := range charts {
		rows = append(rows, []string{c.CreatedAt, c.Kind.String(), c.Title, c.FilePath})
	}
	printer.Table([]string{"CREATED", "KIND", "TITLE", "FILE"}, rows)
	return nil
}
