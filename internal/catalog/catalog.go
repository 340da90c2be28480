// Package catalog enumerates template files across workspace resource roots
// and extracts their one-line descriptions.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decksmith/decksmith/internal/resource"
)

// ErrNotFound is returned when a requested template exists in no root.
var ErrNotFound = errors.New("template not found")

// Info describes one template.
type Info struct {
	// Name is the file stem, the template's identifier.
	Name string `json:"name"`
	// Path is the full path to the template file.
	Path string `json:"path"`
	// File is the base file name.
	File string `json:"file"`
	// Metadata is the one-line description extracted from the file,
	// or a kind-specific default.
	Metadata string `json:"metadata"`
	// Tier records the precedence tier of the source root.
	Tier resource.Tier `json:"tier"`
}

// Registry lists templates of the template kinds (slides, reports, charts,
// outlines). The themes kind is not a template kind.
type Registry struct {
	resolver *resource.Resolver
}

// New creates a Registry backed by the given resolver.
func New(resolver *resource.Resolver) *Registry {
	return &Registry{resolver: resolver}
}

// List returns templates of a kind across all roots, ordered by name.
// With names given, the result is restricted to those stems before
// de-duplication, so a user-tier template still shadows a system-tier one
// of the same name. Unreadable files get the default description, missing
// directories contribute nothing; neither is an error.
func (r *Registry) List(kind resource.Kind, names ...string) ([]Info, error) {
	if !kind.Valid() || kind == resource.Themes {
		return nil, fmt.Errorf("invalid template kind %q", kind)
	}

	wanted := map[string]bool{}
	for _, n := range names {
		wanted[strings.TrimSuffix(n, kind.Ext())] = true
	}

	seen := map[string]Info{}
	for _, root := range r.resolver.Roots(kind) {
		for _, info := range templatesInRoot(root, kind) {
			if len(wanted) > 0 && !wanted[info.Name] {
				continue
			}
			if _, dup := seen[info.Name]; !dup {
				seen[info.Name] = info
			}
		}
	}

	result := make([]Info, 0, len(seen))
	for _, info := range seen {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Find resolves a template reference — a stem ("01_base_slide") or file name
// ("01_base_slide.html") — to the highest-precedence match.
func (r *Registry) Find(kind resource.Kind, ref string) (*Info, error) {
	stem := strings.TrimSuffix(filepath.Base(ref), kind.Ext())
	matches, err := r.List(kind, stem)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return &matches[0], nil
}

// Names returns all template stems of a kind, for suggestions.
func (r *Registry) Names(kind resource.Kind) []string {
	infos, err := r.List(kind)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names
}

// templatesInRoot globs one root for the kind's extension.
func templatesInRoot(root resource.Root, kind resource.Kind) []Info {
	entries, err := os.ReadDir(root.Dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, kind.Ext()) {
			continue
		}
		path := filepath.Join(root.Dir, name)
		infos = append(infos, Info{
			Name:     strings.TrimSuffix(name, kind.Ext()),
			Path:     path,
			File:     name,
			Metadata: describe(path, kind),
			Tier:     root.Tier,
		})
	}
	return infos
}
