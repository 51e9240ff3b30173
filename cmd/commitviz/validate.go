// Package main provides the entry point for the commitviz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/output"
	"github.com/redcedar/commitviz/internal/viz"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var fileFlag string
	cmd := &cobra.Command{
		Use:   "validate [kind]",
		Short: "Validate a commit count file and print its statistics",
		Long: `Validate a collected commit count file.

Checks every line against the period kind's bounds; a single bad line
rejects the whole file. On success prints record count, total commits,
and the max/min/average commits per period.

With a kind argument (hour, day, month) the standard file in the data
directory is validated. With --file, the period kind is inferred from
the file name.

Examples:
  commitviz validate hour
  commitviz validate --file ./data/commit_counts_day.txt
  commitviz validate month --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, fileFlag)
		},
	}
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Validate an explicit file instead of a standard one")
	return cmd
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string, file string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	service, cleanup, err := newService(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer cleanup()

	var result *viz.ValidationResult
	switch {
	case file != "":
		result, err = service.ValidateFile(file)
	case len(args) == 1:
		kind, parseErr := commitdata.ParseKind(args[0])
		if parseErr != nil {
			err = output.NewUserErrorWithCause(parseErr.Error(), parseErr)
		} else {
			result, err = service.ValidateKind(kind)
		}
	default:
		err = output.NewUserError("period kind or --file required: one of hour, day, month")
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Success(map[string]any{"message": "Valid: " + result.Path})
	printer.KeyValue("Records", fmt.Sprintf("%d", result.Stats.Records))
	printer.KeyValue("Total commits", fmt.Sprintf("%d", result.Stats.TotalCommits))
	if result.Stats.Records > 0 {
		printer.KeyValue("Max per period", fmt.Sprintf("%d", result.Stats.MaxCount))
		printer.KeyValue("Min per period", fmt.Sprintf("%d", result.Stats.MinCount))
		printer.KeyValue("Avg per period", fmt.Sprintf("%.2f", result.Stats.AvgCount))
	}
	return nil
}
