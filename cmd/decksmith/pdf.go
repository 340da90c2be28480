// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/export"
	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
)

// newPDFCmd creates the pdf command.
func newPDFCmd() *cobra.Command {
	var formatFlag string
	var outputFlag string
	cmd := &cobra.Command{
		Use:   "pdf <project>",
		Short: "Export a project to PDF",
		Long: `Render a project's pages to a PDF via the configured renderer command
(pdf.command in decksmith.yaml).

The slides format renders slides/slide_*.html as 16:9 pages; the report
format renders report_pages/*.html as 8.5x11 pages. The PDF is written into
the project directory as <project>.pdf.

Examples:
  decksmith pdf q4_review
  decksmith pdf q4_review --format report
  decksmith pdf q4_review --output /tmp/review.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPDF(cmd, args[0], formatFlag, outputFlag)
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "slides", "Export format: slides or report")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default <project dir>/<project>.pdf)")
	return cmd
}

func runPDF(cmd *cobra.Command, projectName, format, outputPath string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	p, err := manager.Get(projectName)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
		printer.Error(err)
		return err
	}

	result, err := export.PDF(cmd.Context(), manager.Workspace().Config, p.Dir, p.Name, export.Format(format), outputPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("PDF", result.Output)
	printer.KeyValue("Pages", strconv.Itoa(result.Pages))
	return nil
}
