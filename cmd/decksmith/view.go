// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/preview"
	"github.com/decksmith/decksmith/internal/project"
)

// newViewCmd creates the view command.
func newViewCmd() *cobra.Command {
	var portFlag int
	cmd := &cobra.Command{
		Use:   "view <project>",
		Short: "Start the live viewer for a project",
		Long: `Launch the configured viewer command (viewer.command in decksmith.yaml)
detached, serving the project directory. The viewer reads its listen port
from the PORT environment variable.

Examples:
  decksmith view q4_review
  decksmith view q4_review --port 8123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], portFlag)
		},
	}
	cmd.Flags().IntVarP(&portFlag, "port", "p", 0, "Listen port (configured default when omitted)")
	return cmd
}

func runView(cmd *cobra.Command, projectName string, port int) error {
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

	result, err := preview.Start(manager.Workspace().Config, p.Dir, p.Name, port)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Viewer", result.URL)
	printer.Stderr("Serving %s (pid %d). Stop it with your process manager.\n", p.Name, result.PID)
	return nil
}
