package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decksmith/decksmith/internal/resource"
)

// Locator finds themes across the workspace's theme roots.
type Locator struct {
	resolver *resource.Resolver
}

// NewLocator creates a Locator backed by the given resolver.
func NewLocator(resolver *resource.Resolver) *Locator {
	return &Locator{resolver: resolver}
}

// Find returns the theme with the given name from the highest-precedence root
// containing it. Within a root the directory form wins over the loose-file
// form. Returns ErrNotFound if no root has it; never errors on I/O problems
// with individual roots (they are skipped).
func (l *Locator) Find(name string) (*Theme, error) {
	for _, root := range l.resolver.Roots(resource.Themes) {
		if found := themeInRoot(root, name); found != nil {
			return found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// List returns themes across all roots, de-duplicated by name keeping the
// highest-precedence entry. With names given, the result is restricted to
// those names; unknown names are simply absent.
func (l *Locator) List(names ...string) []Theme {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}

	found := map[string]Theme{}
	for _, root := range l.resolver.Roots(resource.Themes) {
		for _, t := range themesInRoot(root) {
			if len(wanted) > 0 && !wanted[t.Name] {
				continue
			}
			if _, seen := found[t.Name]; !seen {
				found[t.Name] = t
			}
		}
	}

	result := make([]Theme, 0, len(found))
	for _, name := range sortedNames(found) {
		result = append(result, found[name])
	}
	return result
}

// Names returns all available theme names, for suggestions and completion.
func (l *Locator) Names() []string {
	themes := l.List()
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// themeInRoot checks a single root for a named theme.
func themeInRoot(root resource.Root, name string) *Theme {
	// Directory form: <root>/<name>/<name>_theme.css
	dir := filepath.Join(root.Dir, name)
	if fileExists(filepath.Join(dir, CSSName(name))) {
		return &Theme{
			Name:  name,
			Dir:   dir,
			Tier:  root.Tier,
			Files: regularFiles(dir, ""),
		}
	}

	// Loose form: <root>/<name>_theme.css directly in a shared root.
	// Normalized to the {name}_* file subset of the root.
	if fileExists(filepath.Join(root.Dir, CSSName(name))) {
		return &Theme{
			Name:  name,
			Dir:   root.Dir,
			Tier:  root.Tier,
			Files: regularFiles(root.Dir, name+"_"),
			Loose: true,
		}
	}

	return nil
}

// themesInRoot enumerates every theme stored in a root, both forms.
func themesInRoot(root resource.Root) []Theme {
	entries, err := os.ReadDir(root.Dir)
	if err != nil {
		return nil
	}

	var themes []Theme
	for _, entry := range entries {
		if entry.IsDir() {
			name := entry.Name()
			if t := themeInRoot(root, name); t != nil && !t.Loose {
				themes = append(themes, *t)
			}
			continue
		}
		if name := NameFromCSS(entry.Name()); name != "" && !IsBaseStylesheet(entry.Name()) {
			if t := themeInRoot(root, name); t != nil {
				themes = append(themes, *t)
			}
		}
	}
	return themes
}

// CopyTo flat-copies the theme's files into dst. Subdirectories in the theme
// source are not preserved; a project theme folder is always flat.
func (t *Theme) CopyTo(dst string) error {
	for _, name := range t.Files {
		data, err := os.ReadFile(filepath.Join(t.Dir, name))
		if err != nil {
			return fmt.Errorf("reading theme file %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dst, name), data, 0o644); err != nil {
			return fmt.Errorf("copying theme file %s: %w", name, err)
		}
	}
	return nil
}

// regularFiles lists regular file names in dir, optionally restricted to a
// name prefix. Returns them sorted (os.ReadDir order).
func regularFiles(dir, prefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if prefix != "" && !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
