// Package project creates and mutates presentation projects: the directory
// skeleton, theme asset copies, template materialization, and theme swaps.
//
// A project is self-contained once created: every file it needs to render
// resolves via relative paths inside its own tree. The local theme folder is
// the sole signal of the active theme; there is no config record to drift.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decksmith/decksmith/internal/catalog"
	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/theme"
	"github.com/decksmith/decksmith/internal/workspace"
)

// Sentinel errors for the caller-facing taxonomy.
var (
	ErrExists   = errors.New("project already exists")
	ErrNotFound = errors.New("project not found")
)

// Subdirectories of every project.
var subdirs = []string{"slides", "report_pages", "plots", "input", "validation", "theme"}

// Project is a located project on disk.
type Project struct {
	Name string
	Dir  string
}

// ThemeDir is the project's local theme folder.
func (p *Project) ThemeDir() string {
	return filepath.Join(p.Dir, "theme")
}

// SlidesDir is the project's slides folder (16:9 pages).
func (p *Project) SlidesDir() string {
	return filepath.Join(p.Dir, "slides")
}

// ReportPagesDir is the project's report pages folder (8.5x11 pages).
func (p *Project) ReportPagesDir() string {
	return filepath.Join(p.Dir, "report_pages")
}

// PlotsDir is the project's chart scripts and rendered plots folder.
func (p *Project) PlotsDir() string {
	return filepath.Join(p.Dir, "plots")
}

// ActiveTheme derives the project's theme from its theme folder.
func (p *Project) ActiveTheme() (string, bool) {
	return theme.Active(p.ThemeDir())
}

// Manager wires the workspace, theme locator, and template registry together
// for project operations.
type Manager struct {
	ws       *workspace.Workspace
	resolver *resource.Resolver
	themes   *theme.Locator
	registry *catalog.Registry
}

// NewManager creates a Manager for the workspace.
func NewManager(ws *workspace.Workspace) *Manager {
	resolver := resource.New(ws)
	return &Manager{
		ws:       ws,
		resolver: resolver,
		themes:   theme.NewLocator(resolver),
		registry: catalog.New(resolver),
	}
}

// Workspace returns the manager's workspace.
func (m *Manager) Workspace() *workspace.Workspace {
	return m.ws
}

// Themes returns the manager's theme locator.
func (m *Manager) Themes() *theme.Locator {
	return m.themes
}

// Registry returns the manager's template registry.
func (m *Manager) Registry() *catalog.Registry {
	return m.registry
}

// Get locates an existing project by (sanitized) name. The deprecated
// projects/ location is consulted after user_projects/, read-compatible but
// never used for new projects.
func (m *Manager) Get(name string) (*Project, error) {
	safe := SanitizeName(name)
	for _, dir := range []string{m.ws.ProjectDir(safe), filepath.Join(m.ws.LegacyProjectsDir(), safe)} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return &Project{Name: safe, Dir: dir}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, safe)
}

// SanitizeName converts a requested project name to its filesystem-safe
// on-disk identifier: alphanumerics, hyphen, and underscore are kept, every
// other character becomes an underscore.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Humanize turns a sanitized project name into a display title:
// separators become spaces and words are capitalized.
func Humanize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
