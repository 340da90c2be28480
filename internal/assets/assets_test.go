package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	base := t.TempDir()

	written, err := Extract(base)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if written == 0 {
		t.Fatal("nothing extracted")
	}

	for _, rel := range []string{
		"resources/templates/slides/slide_base.css",
		"resources/templates/slides/01_base_slide.html",
		"resources/templates/reports/report_base.css",
		"resources/templates/charts/bar_chart.py",
		"resources/templates/outlines/outline_slides.md",
		"resources/themes/core/acme_corp/acme_corp_theme.css",
		"resources/themes/core/barney/barney_theme.css",
	} {
		if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	info, err := os.Stat(filepath.Join(base, "resources", "templates", "charts", "bar_chart.py"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Error("chart template must be extracted executable")
	}
}

func TestExtract_NeverOverwrites(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "resources", "templates", "slides", "01_base_slide.html")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("customized"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := Extract(base)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "customized" {
		t.Error("existing file was overwritten")
	}

	second, err := Extract(base)
	if err != nil {
		t.Fatal(err)
	}
	if second != 0 {
		t.Errorf("second extraction wrote %d files, want 0", second)
	}
	if first == 0 {
		t.Error("first extraction wrote nothing")
	}
}

func TestBundledTemplatesCarryConventions(t *testing.T) {
	data, err := FS.ReadFile("resources/templates/slides/01_base_slide.html")
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"<!-- Use case:", "[TITLE]", "slide_base.css", "_theme.css"} {
		if !strings.Contains(content, want) {
			t.Errorf("bundled slide template missing %q", want)
		}
	}

	data, err = FS.ReadFile("resources/templates/charts/bar_chart.py")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "OUTPUT_NAME") {
		t.Error("bundled chart template missing OUTPUT_NAME binding")
	}
}
