package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/workspace"
)

func newTestRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	base := t.TempDir()
	ws := &workspace.Workspace{Base: base}
	return New(resource.New(ws)), base
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func systemTemplates(base, kind string) string {
	return filepath.Join(base, "resources", "templates", kind)
}

func userTemplates(base, kind string) string {
	return filepath.Join(base, "user_resources", "templates", kind)
}

const slideWithUseCase = `<!-- Use case: Title slide with centered branding -->
<!DOCTYPE html>
<html><head><title>[TITLE]</title></head><body></body></html>
`

const chartWithDocstring = `#!/usr/bin/env python3
"""
Horizontal bar chart with value labels.

Longer explanation that must not leak into the listing.
"""
import matplotlib.pyplot as plt
`

const outlineWithFrontmatter = `---
name: outline_slides
description: Slide deck outline skeleton
---
# {title}

Author: {author}
Theme: {theme}
`

func TestList_ExtractsMetadata(t *testing.T) {
	registry, base := newTestRegistry(t)

	writeTemplate(t, systemTemplates(base, "slides"), "00_title_slide.html", slideWithUseCase)
	writeTemplate(t, systemTemplates(base, "slides"), "01_base_slide.html", "<html></html>")

	infos, err := registry.List(resource.Slides)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d templates, want 2", len(infos))
	}

	byName := map[string]Info{}
	for _, info := range infos {
		byName[info.Name] = info
	}

	if got := byName["00_title_slide"].Metadata; got != "Title slide with centered branding" {
		t.Errorf("use-case metadata = %q", got)
	}
	if got := byName["01_base_slide"].Metadata; got != defaultSlideMetadata {
		t.Errorf("default metadata = %q, want %q", got, defaultSlideMetadata)
	}
}

func TestList_ChartDocstring(t *testing.T) {
	registry, base := newTestRegistry(t)
	writeTemplate(t, systemTemplates(base, "charts"), "bar_chart.py", chartWithDocstring)
	writeTemplate(t, systemTemplates(base, "charts"), "plain.py", "import sys\n")

	infos, err := registry.List(resource.Charts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	byName := map[string]Info{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	if got := byName["bar_chart"].Metadata; got != "Horizontal bar chart with value labels." {
		t.Errorf("docstring metadata = %q", got)
	}
	if got := byName["plain"].Metadata; got != defaultChartMetadata {
		t.Errorf("default chart metadata = %q", got)
	}
}

func TestList_OutlineFrontmatter(t *testing.T) {
	registry, base := newTestRegistry(t)
	writeTemplate(t, systemTemplates(base, "outlines"), "outline_slides.md", outlineWithFrontmatter)

	infos, err := registry.List(resource.Outlines)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("got %d outlines", len(infos))
	}
	if infos[0].Metadata != "Slide deck outline skeleton" {
		t.Errorf("frontmatter metadata = %q", infos[0].Metadata)
	}
}

func TestList_UserShadowsSystem(t *testing.T) {
	registry, base := newTestRegistry(t)
	writeTemplate(t, systemTemplates(base, "slides"), "01_base_slide.html", "<html>system</html>")
	writeTemplate(t, userTemplates(base, "slides"), "01_base_slide.html", "<html>user</html>")

	infos, err := registry.List(resource.Slides)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("got %d templates, want 1 after de-dup", len(infos))
	}
	if infos[0].Tier != resource.TierUser {
		t.Errorf("tier = %s, want user", infos[0].Tier)
	}
}

func TestList_NameFilterBeforeDedup(t *testing.T) {
	registry, base := newTestRegistry(t)
	writeTemplate(t, systemTemplates(base, "slides"), "01_base_slide.html", "<html>system</html>")
	writeTemplate(t, systemTemplates(base, "slides"), "02_two_column.html", "<html></html>")
	writeTemplate(t, userTemplates(base, "slides"), "01_base_slide.html", "<html>user</html>")

	infos, err := registry.List(resource.Slides, "01_base_slide")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].Tier != resource.TierUser {
		t.Errorf("filtered list = %+v, want single user-tier entry", infos)
	}
}

func TestList_InvalidKind(t *testing.T) {
	registry, _ := newTestRegistry(t)

	if _, err := registry.List(resource.Themes); err == nil {
		t.Error("themes is not a template kind")
	}
	if _, err := registry.List(resource.Kind("sounds")); err == nil {
		t.Error("unknown kind must error")
	}
}

func TestList_MissingDirsContributeNothing(t *testing.T) {
	registry, _ := newTestRegistry(t)

	infos, err := registry.List(resource.Reports)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("got %d templates from empty workspace", len(infos))
	}
}

func TestFind(t *testing.T) {
	registry, base := newTestRegistry(t)
	writeTemplate(t, systemTemplates(base, "slides"), "01_base_slide.html", "<html></html>")

	tests := []struct {
		name string
		ref  string
	}{
		{"by stem", "01_base_slide"},
		{"by file name", "01_base_slide.html"},
		{"by path", "some/dir/01_base_slide.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := registry.Find(resource.Slides, tt.ref)
			if err != nil {
				t.Fatalf("Find(%q): %v", tt.ref, err)
			}
			if info.Name != "01_base_slide" {
				t.Errorf("Name = %q", info.Name)
			}
		})
	}

	if _, err := registry.Find(resource.Slides, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStripFrontmatter(t *testing.T) {
	got := StripFrontmatter(outlineWithFrontmatter)
	if got == outlineWithFrontmatter || got[0] != '#' {
		t.Errorf("frontmatter not stripped: %q", got)
	}

	plain := "# No frontmatter here"
	if got := StripFrontmatter(plain); got != plain {
		t.Errorf("plain content altered: %q", got)
	}
}
