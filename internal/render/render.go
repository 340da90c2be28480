// Package render materializes templates: literal placeholder substitution
// plus the path-normalization passes that rebind a template to a project's
// local theme folder.
//
// Substitution is deliberately not a templating language. Tokens are replaced
// as literal substrings, case-sensitively, and unmatched tokens pass through
// verbatim — a template with a token the caller didn't bind still materializes.
package render

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// RelThemeDir is the relative path from a project's slides/ or report_pages/
// folder to its local theme folder. Fixed by the project layout.
const RelThemeDir = "../theme"

// Placeholders maps token keys to replacement values.
// HTML templates use bracket delimiters ([TITLE]); Markdown templates use
// brace delimiters ({title}).
type Placeholders map[string]string

// ApplyBrackets replaces every [KEY] occurrence for each key in values.
// Keys are applied in sorted order; since values never contain delimiters of
// other tokens, order does not change the result.
func ApplyBrackets(content string, values Placeholders) string {
	for _, key := range sortedKeys(values) {
		content = strings.ReplaceAll(content, "["+key+"]", values[key])
	}
	return content
}

// ApplyBraces replaces every {key} occurrence for each key in values.
func ApplyBraces(content string, values Placeholders) string {
	for _, key := range sortedKeys(values) {
		content = strings.ReplaceAll(content, "{"+key+"}", values[key])
	}
	return content
}

// ReadTemplate reads a template file as text.
func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

func sortedKeys(values Placeholders) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
