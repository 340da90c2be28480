// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
)

// newChartCmd creates the chart command.
func newChartCmd() *cobra.Command {
	var templateFlag string
	cmd := &cobra.Command{
		Use:   "chart <project> <name>",
		Short: "Materialize a chart script from a template",
		Long: `Materialize a chart template into <project>/plots/ as an executable
script. Output file names inside the script are rebound from the template's
stem to the chart name, and the matplotlib style reference points at the
project theme.

Examples:
  decksmith chart q4_review revenue
  decksmith chart q4_review margins --template line_chart`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterialize(cmd, nil, resource.Charts,
				func(manager *project.Manager, _ render.Placeholders) (*project.MaterializeResult, error) {
					return manager.NewChart(args[0], args[1], templateFlag)
				})
		},
	}
	cmd.Flags().StringVar(&templateFlag, "template", "", "Chart template to use (default bar_chart)")
	return cmd
}
