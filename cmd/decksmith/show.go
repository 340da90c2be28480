// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show a project's contents",
		Long: `Show the detailed state of one project: active theme, slide and report
page counts, chart scripts, input files, and whether a PDF has been exported.

Examples:
  decksmith show q4_review
  decksmith show q4_review --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, name string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	detail, err := manager.Show(name)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(detail)
	}

	printer.Section(detail.Name)
	printer.KeyValue("Path", detail.Path)
	printer.KeyValue("Theme", detail.Theme)
	printer.KeyValue("Slides", strconv.Itoa(detail.Slides))
	printer.KeyValue("Report pages", strconv.Itoa(detail.ReportPages))
	printer.KeyValue("Charts", strconv.Itoa(detail.Charts))
	printer.KeyValue("Inputs", strconv.Itoa(detail.Inputs))
	printer.KeyValue("Outline", strconv.FormatBool(detail.HasOutline))
	printer.KeyValue("PDF", strconv.FormatBool(detail.HasPDF))
	return nil
}
