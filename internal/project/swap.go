package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/theme"
)

// SwapResult describes a completed theme swap.
type SwapResult struct {
	Project   string   `json:"project"`
	OldTheme  string   `json:"old_theme,omitempty"`
	NewTheme  string   `json:"new_theme"`
	Rewritten []string `json:"rewritten,omitempty"`
	Failures  []string `json:"failures,omitempty"`
}

// SwapTheme replaces a project's theme assets and rewrites theme references
// in its materialized pages. Locating the new theme happens before any
// mutation, so an unknown theme leaves the project untouched. The per-file
// reference rewrite is best-effort: a file that cannot be updated is recorded
// in Failures and the rest proceed.
func (m *Manager) SwapTheme(projectName, themeName string) (*SwapResult, error) {
	p, err := m.Get(projectName)
	if err != nil {
		return nil, err
	}
	newTheme, err := m.themes.Find(themeName)
	if err != nil {
		return nil, err
	}

	oldName, _ := p.ActiveTheme()
	result := &SwapResult{Project: p.Name, OldTheme: oldName, NewTheme: newTheme.Name}

	if err := clearThemeDir(p.ThemeDir()); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.ThemeDir(), 0o755); err != nil {
		return nil, err
	}
	if err := newTheme.CopyTo(p.ThemeDir()); err != nil {
		return nil, fmt.Errorf("installing theme %q: %w", newTheme.Name, err)
	}
	m.ensureBaseStylesheets(p)

	for _, pattern := range []string{
		filepath.Join(p.SlidesDir(), "*.html"),
		filepath.Join(p.ReportPagesDir(), "*.html"),
		filepath.Join(p.PlotsDir(), "*.py"),
	} {
		matches, _ := filepath.Glob(pattern)
		for _, path := range matches {
			switch err := rewriteFile(path, oldName, newTheme.Name); {
			case err != nil:
				result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", path, err))
			default:
				result.Rewritten = append(result.Rewritten, path)
			}
		}
	}

	return result, nil
}

// clearThemeDir removes the old theme's files, keeping the shared base
// stylesheets in place.
func clearThemeDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || theme.IsBaseStylesheet(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("removing old theme file: %w", err)
		}
	}
	return nil
}

// ensureBaseStylesheets restores slide_base.css and report_base.css if the
// project predates them or they went missing. Existing copies are left as-is.
func (m *Manager) ensureBaseStylesheets(p *Project) {
	bases := []struct {
		kind resource.Kind
		file string
	}{
		{resource.Slides, theme.SlideBaseCSS},
		{resource.Reports, theme.ReportBaseCSS},
	}
	for _, base := range bases {
		dst := filepath.Join(p.ThemeDir(), base.file)
		if fileExists(dst) {
			continue
		}
		if src := findInRoots(m.resolver, base.kind, base.file); src != "" {
			_ = copyFile(src, dst)
		}
	}
}

// rewriteFile applies the theme-name rewrite to one materialized file,
// writing only when the content changed.
func rewriteFile(path, oldTheme, newTheme string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	updated := render.RewriteThemeName(string(data), oldTheme, newTheme)
	if updated == string(data) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(updated), info.Mode().Perm())
}
