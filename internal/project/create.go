package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decksmith/decksmith/internal/catalog"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/theme"
)

// defaultOutlineTemplate is the outline seeded into new projects when the
// caller does not pick one.
const defaultOutlineTemplate = "outline_slides"

// CreateResult describes a created project.
type CreateResult struct {
	Project  *Project `json:"-"`
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Theme    string   `json:"theme"`
	Warnings []string `json:"warnings,omitempty"`
}

// Create makes a new project under user_projects/. The name collision check
// is the only terminal failure after the skeleton exists; theme assets and
// the outline are best-effort, with problems reported as warnings. The
// description, when given, is bound into the starter outline.
func (m *Manager) Create(name, themeName, description string) (*CreateResult, error) {
	safe := SanitizeName(name)
	if safe == "" {
		return nil, errors.New("project name is empty after sanitization")
	}

	dir := m.ws.ProjectDir(safe)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, safe)
	}

	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("creating project skeleton: %w", err)
		}
	}
	p := &Project{Name: safe, Dir: dir}

	result := &CreateResult{Project: p, Name: safe, Path: dir}
	result.Theme = m.installTheme(p, themeName, result)
	m.copyBaseStylesheets(p, result)
	m.seedOutline(p, result.Theme, description, result)

	return result, nil
}

// installTheme copies the requested theme into the project, falling back to
// the workspace default when the request cannot be located. Returns the name
// of the theme actually installed, or "" when none could be.
func (m *Manager) installTheme(p *Project, themeName string, result *CreateResult) string {
	if themeName == "" {
		themeName = m.ws.Config.DefaultTheme
	}

	t, err := m.themes.Find(themeName)
	if errors.Is(err, theme.ErrNotFound) && themeName != m.ws.Config.DefaultTheme {
		result.warn("theme %q not found, falling back to %q", themeName, m.ws.Config.DefaultTheme)
		t, err = m.themes.Find(m.ws.Config.DefaultTheme)
	}
	if err != nil {
		result.warn("no theme installed: %v", err)
		return ""
	}

	if err := t.CopyTo(p.ThemeDir()); err != nil {
		result.warn("copying theme %q: %v", t.Name, err)
		return ""
	}
	return t.Name
}

// copyBaseStylesheets copies slide_base.css and report_base.css from the
// template roots into the project theme folder, so materialized pages can
// link them via the fixed relative path.
func (m *Manager) copyBaseStylesheets(p *Project, result *CreateResult) {
	bases := []struct {
		kind resource.Kind
		file string
	}{
		{resource.Slides, theme.SlideBaseCSS},
		{resource.Reports, theme.ReportBaseCSS},
	}
	for _, base := range bases {
		src := findInRoots(m.resolver, base.kind, base.file)
		if src == "" {
			result.warn("%s not found in any %s template root", base.file, base.kind)
			continue
		}
		if err := copyFile(src, filepath.Join(p.ThemeDir(), base.file)); err != nil {
			result.warn("copying %s: %v", base.file, err)
		}
	}
}

// seedOutline materializes the default outline template into outline.md.
// Frontmatter is metadata for the catalog listing and never ships with the
// project copy.
func (m *Manager) seedOutline(p *Project, themeName, description string, result *CreateResult) {
	info, err := m.registry.Find(resource.Outlines, defaultOutlineTemplate)
	if errors.Is(err, catalog.ErrNotFound) {
		if all, listErr := m.registry.List(resource.Outlines); listErr == nil && len(all) > 0 {
			info, err = &all[0], nil
		}
	}
	if err != nil {
		result.warn("no outline template available: %v", err)
		return
	}

	content, err := render.MaterializeMarkdown(info.Path, render.Placeholders{
		"title":       Humanize(p.Name),
		"author":      m.ws.Config.Author,
		"theme":       themeName,
		"description": description,
	})
	if err != nil {
		result.warn("materializing outline: %v", err)
		return
	}
	content = catalog.StripFrontmatter(content)

	if err := os.WriteFile(filepath.Join(p.Dir, "outline.md"), []byte(content), 0o644); err != nil {
		result.warn("writing outline.md: %v", err)
	}
}

func (r *CreateResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// findInRoots returns the first existing path of file across the kind's
// roots, in precedence order.
func findInRoots(r *resource.Resolver, kind resource.Kind, file string) string {
	for _, root := range r.Roots(kind) {
		path := filepath.Join(root.Dir, file)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
