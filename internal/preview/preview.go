// Package preview launches the external live viewer for a project.
package preview

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/workspace"
)

// Result describes a launched viewer.
type Result struct {
	Project string `json:"project"`
	PID     int    `json:"pid"`
	Port    int    `json:"port"`
	URL     string `json:"url"`
}

// Start launches the configured viewer command detached, serving the project
// directory. The viewer reads its listen port from the PORT environment
// variable. A port of 0 uses the configured default.
func Start(cfg workspace.Config, projectDir, projectName string, port int) (*Result, error) {
	if port == 0 {
		port = cfg.Viewer.Port
	}

	cmd := exec.Command(cfg.Viewer.Command, projectDir)
	cmd.Env = append(os.Environ(), fmt.Sprintf("PORT=%d", port))
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, output.NewSystemError(cfg.Viewer.Command + " not found: install the viewer or set viewer.command in decksmith.yaml")
		}
		return nil, output.NewSystemErrorWithCause("starting viewer", err)
	}

	// Detach: the viewer outlives the CLI invocation.
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return nil, output.NewSystemErrorWithCause("detaching viewer", err)
	}

	return &Result{
		Project: projectName,
		PID:     pid,
		Port:    port,
		URL:     fmt.Sprintf("http://localhost:%d", port),
	}, nil
}
