package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decksmith/decksmith/internal/workspace"
)

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	base := t.TempDir()
	return New(&workspace.Workspace{Base: base}), base
}

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
	}
}

func TestRoots_EmptyWorkspace(t *testing.T) {
	resolver, _ := newTestResolver(t)

	for _, kind := range Kinds() {
		if roots := resolver.Roots(kind); len(roots) != 0 {
			t.Errorf("Roots(%s) = %v, want empty", kind, roots)
		}
	}
}

func TestRoots_PrecedenceOrder(t *testing.T) {
	resolver, base := newTestResolver(t)

	userDir := filepath.Join(base, "user_resources", "themes")
	legacyDir := filepath.Join(base, "themes")
	systemDir := filepath.Join(base, "resources", "themes", "core")
	mkdirs(t, userDir, legacyDir, systemDir)

	roots := resolver.Roots(Themes)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}

	wantTiers := []Tier{TierUser, TierLegacy, TierSystem}
	wantDirs := []string{userDir, legacyDir, systemDir}
	for i, root := range roots {
		if root.Tier != wantTiers[i] {
			t.Errorf("roots[%d].Tier = %s, want %s", i, root.Tier, wantTiers[i])
		}
		if root.Dir != wantDirs[i] {
			t.Errorf("roots[%d].Dir = %s, want %s", i, root.Dir, wantDirs[i])
		}
	}
}

func TestRoots_FiltersMissingDirectories(t *testing.T) {
	resolver, base := newTestResolver(t)

	systemDir := filepath.Join(base, "resources", "templates", "slides")
	mkdirs(t, systemDir)

	roots := resolver.Roots(Slides)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].Tier != TierSystem {
		t.Errorf("tier = %s, want system", roots[0].Tier)
	}
}

func TestRoots_DoesNotCreateDirectories(t *testing.T) {
	resolver, base := newTestResolver(t)

	resolver.Roots(Outlines)

	if _, err := os.Stat(filepath.Join(base, "markdown_templates")); !os.IsNotExist(err) {
		t.Error("resolver must not create candidate directories")
	}
}

func TestRoots_IgnoresFilesAtCandidatePaths(t *testing.T) {
	resolver, base := newTestResolver(t)

	// A file where a directory is expected does not count.
	mkdirs(t, filepath.Join(base, "src", "slides"))
	if err := os.WriteFile(filepath.Join(base, "src", "slides", "slide_templates"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if roots := resolver.Roots(Slides); len(roots) != 0 {
		t.Errorf("file at candidate path should be ignored, got %v", roots)
	}
}

func TestKind_Valid(t *testing.T) {
	if !Kind("charts").Valid() {
		t.Error("charts should be valid")
	}
	if Kind("sounds").Valid() {
		t.Error("sounds should be invalid")
	}
}

func TestKind_Ext(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Slides, ".html"},
		{Reports, ".html"},
		{Charts, ".py"},
		{Outlines, ".md"},
		{Themes, ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Ext(); got != tt.want {
			t.Errorf("%s.Ext() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
