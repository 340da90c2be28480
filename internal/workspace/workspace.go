// Package workspace resolves the decksmith workspace root and its layout.
//
// A workspace is a directory holding everything decksmith touches: bundled
// system resources, user-supplied resources, and the projects themselves.
// The root is resolved once at startup and injected into the components that
// need it; nothing reads path constants from package-level state.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the workspace marker and configuration file.
const ConfigFileName = "decksmith.yaml"

// Root returns the workspace root directory.
//
// Resolution:
//   - $DECKSMITH_HOME if set (explicit override)
//   - the nearest ancestor of the working directory containing decksmith.yaml
//   - ~/.decksmith otherwise
func Root() string {
	if dir := os.Getenv("DECKSMITH_HOME"); dir != "" {
		return dir
	}

	if cwd, err := os.Getwd(); err == nil {
		if found := findMarker(cwd); found != "" {
			return found
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".decksmith")
}

// findMarker walks up from dir looking for a decksmith.yaml file.
// Returns the containing directory, or "" if none is found.
func findMarker(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Workspace is an opened workspace: a root directory plus its configuration.
// The value is immutable after Open; treat it as read-only shared state.
type Workspace struct {
	Base   string
	Config Config
}

// Open opens the workspace rooted at base, loading decksmith.yaml if present.
// A missing config file is not an error; defaults apply.
func Open(base string) (*Workspace, error) {
	if base == "" {
		return nil, fmt.Errorf("cannot resolve workspace root (set DECKSMITH_HOME)")
	}
	cfg, err := LoadConfig(filepath.Join(base, ConfigFileName))
	if err != nil {
		return nil, err
	}
	return &Workspace{Base: base, Config: cfg}, nil
}

// OpenDefault opens the workspace at the resolved default root.
func OpenDefault() (*Workspace, error) {
	return Open(Root())
}

// ProjectsDir is where projects are created: <base>/user_projects.
func (ws *Workspace) ProjectsDir() string {
	return filepath.Join(ws.Base, "user_projects")
}

// LegacyProjectsDir is the deprecated projects location: <base>/projects.
// Read for listing, never written.
func (ws *Workspace) LegacyProjectsDir() string {
	return filepath.Join(ws.Base, "projects")
}

// UserResourcesDir holds user-supplied themes and templates.
func (ws *Workspace) UserResourcesDir() string {
	return filepath.Join(ws.Base, "user_resources")
}

// SystemResourcesDir holds the bundled resources extracted by `decksmith init`.
func (ws *Workspace) SystemResourcesDir() string {
	return filepath.Join(ws.Base, "resources")
}

// ProjectDir returns the directory for a (already sanitized) project name.
func (ws *Workspace) ProjectDir(name string) string {
	return filepath.Join(ws.ProjectsDir(), name)
}
