// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newThemesCmd creates the themes command.
func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name...]",
		Short: "List available themes",
		Long: `List themes across the workspace's resource tiers.

User themes in user_resources/themes/ override bundled system themes of the
same name; the deprecated themes/ directory is consulted in between. With
names given, only those themes are listed.

Examples:
  decksmith themes
  decksmith themes barney
  decksmith themes --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, args)
		},
	}
}

func runThemes(cmd *cobra.Command, names []string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	themes := manager.Themes().List(names...)

	if printer.IsJSON() {
		type themeRow struct {
			Name string `json:"name"`
			Dir  string `json:"dir"`
			Tier string `json:"tier"`
		}
		rows := make([]themeRow, 0, len(themes))
		for _, t := range themes {
			rows = append(rows, themeRow{Name: t.Name, Dir: t.Dir, Tier: string(t.Tier)})
		}
		return printer.WriteJSON(map[string]any{
			"count":  len(rows),
			"themes": rows,
		})
	}

	if len(themes) == 0 {
		printer.Println("No themes found. Run 'decksmith init' to extract the bundled themes.")
		return nil
	}

	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{t.Name, string(t.Tier), t.Dir})
	}
	printer.Table([]string{"NAME", "TIER", "LOCATION"}, rows)
	return nil
}
