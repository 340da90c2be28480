// Package main provides the entry point for the decksmith CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/envfile"
	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/workspace"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor decides whether human output gets styled.
func useColor(cmd *cobra.Command) bool {
	return output.ColorEnabled(cmd.OutOrStdout())
}

// newPrinter builds the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// openManager opens the workspace and builds the project manager.
func openManager() (*project.Manager, error) {
	ws, err := workspace.OpenDefault()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("opening workspace", err)
	}
	return project.NewManager(ws), nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the decksmith CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decksmith",
		Short: "Scaffold themed slide decks and reports",
		Long: `Decksmith - project scaffolding for HTML slide decks and written reports.

Decksmith keeps brand themes, page templates, and chart templates in layered
workspace resources, and materializes them into self-contained projects:
  - Themes resolve user overrides first, bundled system themes last
  - Templates carry one-line descriptions extracted from the files themselves
  - Materialized pages reference the project's local theme folder only
  - Swapping a theme rewrites every page in place

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUserError("no command specified. Run 'decksmith --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for values that can't live in the config.
	// Environment variables already set always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local  (per-workspace override, gitignored)
//  2. $CWD/.env        (per-workspace)
//  3. <workspace>/env  (workspace-global)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if root := workspace.Root(); root != "" {
		_ = envfile.Load(filepath.Join(root, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "project", Title: "Project Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "authoring", Title: "Authoring Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "resources", Title: "Resource Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Project commands: new, projects, show, swap, pdf, view
	addGroupedCommand(cmd, newNewCmd(), "project")
	addGroupedCommand(cmd, newProjectsCmd(), "project")
	addGroupedCommand(cmd, newShowCmd(), "project")
	addGroupedCommand(cmd, newSwapCmd(), "project")
	addGroupedCommand(cmd, newPDFCmd(), "project")
	addGroupedCommand(cmd, newViewCmd(), "project")

	// Authoring commands: slide, page, chart, outline
	addGroupedCommand(cmd, newSlideCmd(), "authoring")
	addGroupedCommand(cmd, newPageCmd(), "authoring")
	addGroupedCommand(cmd, newChartCmd(), "authoring")
	addGroupedCommand(cmd, newOutlineCmd(), "authoring")

	// Resource commands: themes, templates
	addGroupedCommand(cmd, newThemesCmd(), "resources")
	addGroupedCommand(cmd, newTemplatesCmd(), "resources")

	// Admin commands: init, serve
	addGroupedCommand(cmd, newInitCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
