// Package export drives the external PDF renderer over a project's
// materialized pages.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/workspace"
)

// Format selects which page set is rendered.
type Format string

const (
	// FormatSlides renders slides/slide_*.html as 16:9 pages.
	FormatSlides Format = "slides"
	// FormatReport renders report_pages/*.html as 8.5x11 pages.
	FormatReport Format = "report"
)

// Valid reports whether f is a known export format.
func (f Format) Valid() bool {
	return f == FormatSlides || f == FormatReport
}

// Result describes a completed export.
type Result struct {
	Project string `json:"project"`
	Format  string `json:"format"`
	Output  string `json:"output"`
	Pages   int    `json:"pages"`
}

// PDF renders a project's pages to a PDF via the configured renderer command.
// The renderer is invoked as `<command> <pagesDir> <outputPath> <format>` and
// must exit zero. An empty outputPath defaults to <projectDir>/<project>.pdf.
// A project with no pages for the format is a user error, not a renderer
// invocation.
func PDF(ctx context.Context, cfg workspace.Config, projectDir, projectName string, format Format, outputPath string) (*Result, error) {
	if !format.Valid() {
		return nil, output.NewUserError(fmt.Sprintf("unknown export format %q (slides or report)", format))
	}

	pagesDir, pages, err := pageSet(projectDir, format)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = filepath.Join(projectDir, projectName+".pdf")
	}
	cmd := exec.CommandContext(ctx, cfg.PDF.Command, pagesDir, outputPath, string(format))
	cmd.Dir = projectDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, output.NewSystemError(cfg.PDF.Command + " not found: install the PDF renderer or set pdf.command in decksmith.yaml")
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return nil, output.NewSystemErrorWithCause("pdf renderer failed: "+errMsg, err)
	}

	return &Result{
		Project: projectName,
		Format:  string(format),
		Output:  outputPath,
		Pages:   pages,
	}, nil
}

// pageSet resolves the page directory and page count for a format. The
// legacy slides/report_*.html location is honored when report_pages/ holds
// nothing.
func pageSet(projectDir string, format Format) (string, int, error) {
	dir := filepath.Join(projectDir, "slides")
	pattern := "slide_*.html"
	if format == FormatReport {
		dir = filepath.Join(projectDir, "report_pages")
		pattern = "*.html"
	}

	matches, _ := filepath.Glob(filepath.Join(dir, pattern))
	if len(matches) == 0 && format == FormatReport {
		// Pre-layout projects kept report pages under slides/.
		legacy, _ := filepath.Glob(filepath.Join(projectDir, "slides", "report_*.html"))
		if len(legacy) > 0 {
			return filepath.Join(projectDir, "slides"), len(legacy), nil
		}
	}
	if len(matches) == 0 {
		return "", 0, output.NewUserError(fmt.Sprintf("no %s pages to export in %s", format, dir))
	}
	return dir, len(matches), nil
}
