// Package resource resolves resource directories across the layered roots of
// a workspace. User-supplied resources override deprecated legacy locations,
// which override the bundled system resources.
package resource

import (
	"os"
	"path/filepath"

	"github.com/decksmith/decksmith/internal/workspace"
)

// Kind identifies a resource category.
type Kind string

// Resource kinds. Themes are directories of brand assets; the rest are
// template collections distinguished by file extension.
const (
	Slides   Kind = "slides"
	Reports  Kind = "reports"
	Charts   Kind = "charts"
	Outlines Kind = "outlines"
	Themes   Kind = "themes"
)

// Kinds lists all resource kinds in display order.
func Kinds() []Kind {
	return []Kind{Slides, Reports, Charts, Outlines, Themes}
}

// Valid reports whether k names a known resource kind.
func (k Kind) Valid() bool {
	switch k {
	case Slides, Reports, Charts, Outlines, Themes:
		return true
	}
	return false
}

// Ext returns the template file extension for the kind ("" for themes).
func (k Kind) Ext() string {
	switch k {
	case Slides, Reports:
		return ".html"
	case Charts:
		return ".py"
	case Outlines:
		return ".md"
	}
	return ""
}

// Tier is the precedence category of a resource root.
type Tier string

// Tiers, highest precedence first.
const (
	TierUser   Tier = "user"
	TierLegacy Tier = "legacy"
	TierSystem Tier = "system"
)

// Root is a candidate resource directory with its precedence tier.
type Root struct {
	Dir  string
	Tier Tier
}

// Resolver maps resource kinds to existing candidate directories.
type Resolver struct {
	ws *workspace.Workspace
}

// New creates a Resolver for the workspace.
func New(ws *workspace.Workspace) *Resolver {
	return &Resolver{ws: ws}
}

// Roots returns the existing candidate directories for a kind, ordered by
// precedence (user first, system last). Directories that do not exist are
// filtered out, never created. An unknown kind yields nil.
func (r *Resolver) Roots(kind Kind) []Root {
	var existing []Root
	for _, candidate := range r.candidates(kind) {
		if dirExists(candidate.Dir) {
			existing = append(existing, candidate)
		}
	}
	return existing
}

// candidates returns the full candidate list for a kind, existing or not.
// The legacy entries are the pre-workspace directory layout; they are
// consulted but never written.
func (r *Resolver) candidates(kind Kind) []Root {
	base := r.ws.Base
	user := r.ws.UserResourcesDir()
	system := r.ws.SystemResourcesDir()

	switch kind {
	case Slides:
		return []Root{
			{filepath.Join(user, "templates", "slides"), TierUser},
			{filepath.Join(base, "src", "slides", "slide_templates"), TierLegacy},
			{filepath.Join(system, "templates", "slides"), TierSystem},
		}
	case Reports:
		return []Root{
			{filepath.Join(user, "templates", "reports"), TierUser},
			{filepath.Join(system, "templates", "reports"), TierSystem},
		}
	case Charts:
		return []Root{
			{filepath.Join(user, "templates", "charts"), TierUser},
			{filepath.Join(base, "src", "charts", "chart_templates"), TierLegacy},
			{filepath.Join(system, "templates", "charts"), TierSystem},
		}
	case Outlines:
		return []Root{
			{filepath.Join(user, "templates", "outlines"), TierUser},
			{filepath.Join(base, "markdown_templates"), TierLegacy},
			{filepath.Join(system, "templates", "outlines"), TierSystem},
		}
	case Themes:
		return []Root{
			{filepath.Join(user, "themes"), TierUser},
			{filepath.Join(base, "themes"), TierLegacy},
			{filepath.Join(system, "themes", "core"), TierSystem},
		}
	}
	return nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
