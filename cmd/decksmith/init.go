// Package main provides the entry point for the decksmith CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/assets"
	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/workspace"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the workspace with bundled resources",
		Long: `Initialize the decksmith workspace.

Writes decksmith.yaml (if missing) and extracts the bundled system resources
into <workspace>/resources/: core themes, slide and report templates, chart
templates, and outline skeletons. Files you have already customized are never
overwritten, so re-running init only fills gaps.

Examples:
  decksmith init                    # Initialize the resolved workspace
  DECKSMITH_HOME=~/decks decksmith init`,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	base := workspace.Root()
	if base == "" {
		err := output.NewSystemError("cannot resolve workspace root (set DECKSMITH_HOME)")
		printer.Error(err)
		return err
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		sysErr := output.NewSystemErrorWithCause("creating workspace", err)
		printer.Error(sysErr)
		return sysErr
	}

	configPath := filepath.Join(base, workspace.ConfigFileName)
	configWritten := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := workspace.Config{}
		if err := workspace.WriteConfig(configPath, cfg); err != nil {
			sysErr := output.NewSystemErrorWithCause("writing config", err)
			printer.Error(sysErr)
			return sysErr
		}
		configWritten = true
	}

	userDirs := []string{
		"user_projects",
		filepath.Join("user_resources", "themes"),
		filepath.Join("user_resources", "templates", "slides"),
		filepath.Join("user_resources", "templates", "reports"),
		filepath.Join("user_resources", "templates", "charts"),
		filepath.Join("user_resources", "templates", "outlines"),
	}
	for _, dir := range userDirs {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			sysErr := output.NewSystemErrorWithCause("creating "+dir, err)
			printer.Error(sysErr)
			return sysErr
		}
	}

	extracted, err := assets.Extract(base)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("extracting bundled resources", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"workspace":      base,
			"config_written": configWritten,
			"extracted":      extracted,
		})
	}

	printer.KeyValue("Workspace", base)
	if configWritten {
		printer.KeyValue("Config", configPath)
	}
	printer.Println(fmt.Sprintf("Extracted %d bundled resource files.", extracted))
	return nil
}
