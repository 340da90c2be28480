// Package theme locates named themes across workspace resource roots and
// derives the active theme of a project from its local theme folder.
//
// A theme is a directory holding a fixed file set named after the theme:
// {name}_theme.css (required), {name}_style.mplstyle, and icon/text logo
// images. A directory without the stylesheet is not a theme, whatever else
// it contains.
package theme

import (
	"errors"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/decksmith/decksmith/internal/resource"
)

// Theme file naming suffixes.
const (
	CSSSuffix   = "_theme.css"
	StyleSuffix = "_style.mplstyle"
	IconSuffix  = "_icon_logo"
	TextSuffix  = "_text_logo"
)

// Shared base stylesheets copied into every project alongside the theme.
// They are not theme-tier files and survive theme swaps.
const (
	SlideBaseCSS  = "slide_base.css"
	ReportBaseCSS = "report_base.css"
)

// ErrNotFound is returned when no resolvable root contains the theme.
var ErrNotFound = errors.New("theme not found")

// Theme is a located theme.
type Theme struct {
	// Name is the theme identifier, e.g. "acme_corp".
	Name string
	// Dir is the directory holding the theme's files. For a loose-file theme
	// this is the shared root itself.
	Dir string
	// Tier records which precedence tier the theme came from.
	Tier resource.Tier
	// Files are the file names (not paths) belonging to this theme within Dir.
	Files []string
	// Loose marks a theme stored as bare {name}_* files in a shared root
	// rather than in its own subdirectory.
	Loose bool
}

// CSSName returns the stylesheet file name for a theme name.
func CSSName(name string) string {
	return name + CSSSuffix
}

// IsBaseStylesheet reports whether a file name is one of the shared base
// stylesheets that must never be treated as theme-tier content.
func IsBaseStylesheet(name string) bool {
	return name == SlideBaseCSS || name == ReportBaseCSS
}

// NameFromCSS extracts the theme name from a {name}_theme.css file name.
// Returns "" if the file name does not follow the convention.
func NameFromCSS(fileName string) string {
	if !strings.HasSuffix(fileName, CSSSuffix) {
		return ""
	}
	return strings.TrimSuffix(fileName, CSSSuffix)
}

// Suggest returns up to max theme/template names fuzzy-matching the input,
// for "did you mean" hints. Input order of candidates breaks ranking ties.
func Suggest(input string, candidates []string, max int) []string {
	matches := fuzzy.Find(input, candidates)
	if len(matches) > max {
		matches = matches[:max]
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// sortedNames returns map keys sorted for stable listings.
func sortedNames(set map[string]Theme) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
