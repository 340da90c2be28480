package theme

import (
	"os"
)

// Active derives the active theme name of a project by scanning its local
// theme folder for a {name}_theme.css file. The theme folder content is the
// sole source of truth; no config record is consulted.
//
// Returns ("", false) when the folder is missing or holds no theme stylesheet.
func Active(projectThemeDir string) (string, bool) {
	entries, err := os.ReadDir(projectThemeDir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() || IsBaseStylesheet(entry.Name()) {
			continue
		}
		if name := NameFromCSS(entry.Name()); name != "" {
			return name, true
		}
	}
	return "", false
}
