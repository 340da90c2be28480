// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
)

// newPageCmd creates the page command.
func newPageCmd() *cobra.Command {
	var templateFlag string
	var setFlags []string
	var titleFlag, subtitleFlag, sectionFlag string
	cmd := &cobra.Command{
		Use:   "page <project> <name>",
		Short: "Materialize a report page from a template",
		Long: `Materialize a report page template into <project>/report_pages/.

Names are normalized to the page_NN convention. Report pages are 8.5x11 and
link report_base.css from the project theme folder.

Examples:
  decksmith page q4_review 1 --template 01_cover_page
  decksmith page q4_review 2 --title "Executive Summary"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setFlags = appendShorthand(setFlags, "TITLE", titleFlag)
			setFlags = appendShorthand(setFlags, "SUBTITLE", subtitleFlag)
			setFlags = appendShorthand(setFlags, "SECTION", sectionFlag)
			return runMaterialize(cmd, setFlags, resource.Reports,
				func(manager *project.Manager, values render.Placeholders) (*project.MaterializeResult, error) {
					return manager.NewPage(args[0], args[1], templateFlag, values)
				})
		},
	}
	cmd.Flags().StringVar(&templateFlag, "template", "", "Report template to use (default 06_executive_summary)")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Placeholder value as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Shorthand for --set TITLE=...")
	cmd.Flags().StringVar(&subtitleFlag, "subtitle", "", "Shorthand for --set SUBTITLE=...")
	cmd.Flags().StringVar(&sectionFlag, "section", "", "Shorthand for --set SECTION=...")
	return cmd
}
