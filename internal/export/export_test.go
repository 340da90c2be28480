package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/workspace"
)

// fakeRenderer writes a script that records its arguments and creates the
// output file, standing in for the real PDF renderer.
func fakeRenderer(t *testing.T) (command, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	command = filepath.Join(dir, "renderer")
	argsFile = filepath.Join(dir, "args")
	script := "#!/bin/sh\necho \"$1 $2 $3\" > " + argsFile + "\ntouch \"$2\"\n"
	if err := os.WriteFile(command, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return command, argsFile
}

func projectWithSlides(t *testing.T, count int) string {
	t.Helper()
	dir := t.TempDir()
	slides := filepath.Join(dir, "slides")
	if err := os.MkdirAll(slides, 0o755); err != nil {
		t.Fatal(err)
	}
	names := []string{"slide_01.html", "slide_02.html", "slide_03.html"}
	for i := 0; i < count; i++ {
		if err := os.WriteFile(filepath.Join(slides, names[i]), []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPDF(t *testing.T) {
	command, argsFile := fakeRenderer(t)
	dir := projectWithSlides(t, 2)

	cfg := workspace.Config{}
	cfg.PDF.Command = command

	result, err := PDF(context.Background(), cfg, dir, "deck", FormatSlides, "")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if result.Pages != 2 {
		t.Errorf("pages = %d, want 2", result.Pages)
	}
	if filepath.Base(result.Output) != "deck.pdf" {
		t.Errorf("output = %q", result.Output)
	}
	if _, err := os.Stat(result.Output); err != nil {
		t.Errorf("renderer output missing: %v", err)
	}
	if _, err := os.Stat(argsFile); err != nil {
		t.Errorf("renderer was not invoked: %v", err)
	}
}

func TestPDF_ExplicitOutputPath(t *testing.T) {
	command, _ := fakeRenderer(t)
	dir := projectWithSlides(t, 1)
	outputPath := filepath.Join(t.TempDir(), "review.pdf")

	cfg := workspace.Config{}
	cfg.PDF.Command = command

	result, err := PDF(context.Background(), cfg, dir, "deck", FormatSlides, outputPath)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if result.Output != outputPath {
		t.Errorf("output = %q, want %q", result.Output, outputPath)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("renderer output missing: %v", err)
	}
}

func TestPDF_NoPagesIsUserError(t *testing.T) {
	command, _ := fakeRenderer(t)
	cfg := workspace.Config{}
	cfg.PDF.Command = command

	_, err := PDF(context.Background(), cfg, t.TempDir(), "deck", FormatSlides, "")
	if err == nil {
		t.Fatal("expected error for empty project")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestPDF_MissingRendererIsSystemError(t *testing.T) {
	dir := projectWithSlides(t, 1)
	cfg := workspace.Config{}
	cfg.PDF.Command = filepath.Join(t.TempDir(), "no-such-renderer")

	_, err := PDF(context.Background(), cfg, dir, "deck", FormatSlides, "")
	if err == nil {
		t.Fatal("expected error for missing renderer")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}

func TestPDF_InvalidFormat(t *testing.T) {
	_, err := PDF(context.Background(), workspace.Config{}, t.TempDir(), "deck", Format("poster"), "")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestPDF_ReportLegacyLocation(t *testing.T) {
	command, argsFile := fakeRenderer(t)
	dir := t.TempDir()
	slides := filepath.Join(dir, "slides")
	if err := os.MkdirAll(slides, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(slides, "report_01.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := workspace.Config{}
	cfg.PDF.Command = command

	result, err := PDF(context.Background(), cfg, dir, "deck", FormatReport, "")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if result.Pages != 1 {
		t.Errorf("pages = %d, want 1", result.Pages)
	}

	args, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(args), slides) {
		t.Errorf("renderer args = %q, want legacy slides dir %q", args, slides)
	}
}
