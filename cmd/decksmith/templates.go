// Package main provides the entry point for the decksmith CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/resource"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates <kind> [name...]",
		Short: "List templates of a kind",
		Long: `List templates of one kind with their one-line descriptions.

Kinds: slides, reports, charts, outlines. Descriptions come from the files
themselves: the "Use case" comment in HTML templates, the docstring first
line in chart scripts, and YAML frontmatter in outlines. User templates
shadow system templates of the same name.

Examples:
  decksmith templates slides
  decksmith templates charts bar_chart
  decksmith templates outlines --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, args[0], args[1:])
		},
	}
}

func runTemplates(cmd *cobra.Command, kindArg string, names []string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	kind := resource.Kind(strings.ToLower(kindArg))
	infos, err := manager.Registry().List(kind, names...)
	if err != nil {
		userErr := output.NewUserError(fmt.Sprintf("%v (kinds: slides, reports, charts, outlines)", err))
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"kind":      string(kind),
			"count":     len(infos),
			"templates": infos,
		})
	}

	if len(infos) == 0 {
		printer.Println("No templates found. Run 'decksmith init' to extract the bundled templates.")
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, string(info.Tier), info.Metadata})
	}
	printer.Table([]string{"NAME", "TIER", "DESCRIPTION"}, rows)
	return nil
}
