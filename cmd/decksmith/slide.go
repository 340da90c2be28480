// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
)

// newSlideCmd creates the slide command.
func newSlideCmd() *cobra.Command {
	var templateFlag string
	var setFlags []string
	var titleFlag, subtitleFlag, sectionFlag string
	cmd := &cobra.Command{
		Use:   "slide <project> <name>",
		Short: "Materialize a slide from a template",
		Long: `Materialize a slide template into <project>/slides/.

Names are normalized to the slide_NN convention: "7" becomes slide_07.html.
The template's stylesheet and logo references are rebound to the project's
theme folder, and [PAGE_NUMBER] is filled from the name. Unmatched
placeholder tokens pass through for later editing.

Examples:
  decksmith slide q4_review 2
  decksmith slide q4_review 3 --template 02_two_column
  decksmith slide q4_review 4 --title "Key Findings"
  decksmith slide q4_review 5 --set LEFT_CONTENT="..."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setFlags = appendShorthand(setFlags, "TITLE", titleFlag)
			setFlags = appendShorthand(setFlags, "SUBTITLE", subtitleFlag)
			setFlags = appendShorthand(setFlags, "SECTION", sectionFlag)
			return runMaterialize(cmd, setFlags, resource.Slides,
				func(manager *project.Manager, values render.Placeholders) (*project.MaterializeResult, error) {
					return manager.NewSlide(args[0], args[1], templateFlag, values)
				})
		},
	}
	cmd.Flags().StringVar(&templateFlag, "template", "", "Slide template to use (default 01_base_slide)")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Placeholder value as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Shorthand for --set TITLE=...")
	cmd.Flags().StringVar(&subtitleFlag, "subtitle", "", "Shorthand for --set SUBTITLE=...")
	cmd.Flags().StringVar(&sectionFlag, "section", "", "Shorthand for --set SECTION=...")
	return cmd
}
