// Package assets carries the bundled system resources: core themes, page and
// chart templates, and outline skeletons. `decksmith init` extracts them into
// the workspace's resources/ directory, where the resolver picks them up as
// the system tier.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:resources
var FS embed.FS

// Extract writes the bundled resources under base. Files that already exist
// are left alone, so a re-run refreshes nothing and destroys nothing.
// Returns the number of files written.
func Extract(base string) (int, error) {
	written := 0
	err := fs.WalkDir(FS, "resources", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dst := filepath.Join(base, filepath.FromSlash(path))
		if _, err := os.Stat(dst); err == nil {
			return nil
		}

		data, err := FS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading bundled %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		perm := os.FileMode(0o644)
		if strings.HasSuffix(path, ".py") {
			perm = 0o755
		}
		if err := os.WriteFile(dst, data, perm); err != nil {
			return fmt.Errorf("extracting %s: %w", path, err)
		}
		written++
		return nil
	})
	return written, err
}
