// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
)

// newOutlineCmd creates the outline command.
func newOutlineCmd() *cobra.Command {
	var templateFlag string
	var setFlags []string
	var titleFlag string
	cmd := &cobra.Command{
		Use:   "outline <project> [name]",
		Short: "Materialize an outline from a template",
		Long: `Materialize an outline template into the project root as Markdown.

The title, author, and theme placeholders are filled from the project and the
workspace config; --set overrides them. Catalog frontmatter is stripped from
the project copy.

Examples:
  decksmith outline q4_review
  decksmith outline q4_review report_outline --template outline_report`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			setFlags = appendShorthand(setFlags, "title", titleFlag)
			return runMaterialize(cmd, setFlags, resource.Outlines,
				func(manager *project.Manager, values render.Placeholders) (*project.MaterializeResult, error) {
					return manager.NewOutline(args[0], name, templateFlag, values)
				})
		},
	}
	cmd.Flags().StringVar(&templateFlag, "template", "", "Outline template to use (default outline_slides)")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Placeholder value as key=value (repeatable)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Shorthand for --set title=...")
	return cmd
}
