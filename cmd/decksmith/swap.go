// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/theme"
)

// newSwapCmd creates the swap command.
func newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <project> <theme>",
		Short: "Swap a project's theme",
		Long: `Replace a project's theme assets and rewrite theme references in its
materialized pages.

The new theme is located before anything is touched, so an unknown theme
leaves the project exactly as it was. The shared base stylesheets survive the
swap. Files that cannot be rewritten are reported but do not stop the rest.

Examples:
  decksmith swap q4_review barney
  decksmith swap q4_review barney --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwap(cmd, args[0], args[1])
		},
	}
}

func runSwap(cmd *cobra.Command, projectName, themeName string) error {
	printer := newPrinter(cmd)

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := manager.SwapTheme(projectName, themeName)
	if err != nil {
		mapped := mapSwapError(err, manager)
		printer.Error(mapped)
		return mapped
	}

	for _, failure := range result.Failures {
		printer.Warn("could not rewrite %s", failure)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	if result.OldTheme != "" {
		printer.KeyValue("Theme", result.OldTheme+" -> "+result.NewTheme)
	} else {
		printer.KeyValue("Theme", result.NewTheme)
	}
	printer.KeyValue("Files processed", strconv.Itoa(len(result.Rewritten)))
	return nil
}

// mapSwapError converts swap failures to the exit taxonomy with hints.
func mapSwapError(err error, manager *project.Manager) error {
	if errors.Is(err, project.ErrNotFound) {
		return output.NewUserError(err.Error() + ". Run 'decksmith projects' to list projects")
	}
	if errors.Is(err, theme.ErrNotFound) {
		msg := err.Error()
		name := strings.TrimSpace(msg[strings.LastIndex(msg, ":")+1:])
		if suggestions := theme.Suggest(name, manager.Themes().Names(), 3); len(suggestions) > 0 {
			msg += " (did you mean: " + strings.Join(suggestions, ", ") + "?)"
		}
		return output.NewUserError(msg)
	}
	return err
}
