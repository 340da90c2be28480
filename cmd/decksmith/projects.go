// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newProjectsCmd creates the projects command.
func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects in the workspace",
		Long: `List every project with its active theme.

The active theme is derived from each project's theme folder; projects without
theme assets show an empty theme column. Projects in the deprecated projects/
directory are included.

Examples:
  decksmith projects
  decksmith projects --json`,
		Args: cobra.NoArgs,
		RunE: runProjects,
	}
}

func runProjects(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	summaries := manager.List()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":    len(summaries),
			"projects": summaries,
		})
	}

	if len(summaries) == 0 {
		printer.Println("No projects yet. Create one with 'decksmith new <name>'.")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Name, s.Theme, s.Path})
	}
	printer.Table([]string{"NAME", "THEME", "PATH"}, rows)
	return nil
}
