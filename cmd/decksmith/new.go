// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var themeFlag string
	var descriptionFlag string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project",
		Long: `Create a new project under user_projects/.

The project gets the full directory skeleton (slides, report_pages, plots,
input, validation, theme), a copy of the theme's assets plus the shared base
stylesheets, and a starter outline with the title, author, and theme filled
in. Unsafe characters in the name are replaced with underscores.

Examples:
  decksmith new q4_review
  decksmith new "Q4 Review" --theme barney
  decksmith new q4_review --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], themeFlag, descriptionFlag)
		},
	}
	cmd.Flags().StringVarP(&themeFlag, "theme", "t", "", "Theme to install (workspace default when omitted)")
	cmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Short description bound into the starter outline")
	return cmd
}

func runNew(cmd *cobra.Command, name, themeName, description string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := manager.Create(name, themeName, description)
	if err != nil {
		if errors.Is(err, project.ErrExists) {
			conflictErr := output.NewConflictError(err.Error())
			printer.Error(conflictErr)
			return conflictErr
		}
		printer.Error(err)
		return err
	}

	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Project", result.Name)
	printer.KeyValue("Path", result.Path)
	if result.Theme != "" {
		printer.KeyValue("Theme", result.Theme)
	}
	return nil
}
