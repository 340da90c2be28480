package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decksmith/decksmith/internal/catalog"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/theme"
)

// Default templates used when the caller does not pick one.
const (
	defaultSlideTemplate = "01_base_slide"
	defaultPageTemplate  = "06_executive_summary"
	defaultChartTemplate = "bar_chart"
)

// MaterializeResult describes a file written from a template.
type MaterializeResult struct {
	Project  string `json:"project"`
	Template string `json:"template"`
	Path     string `json:"path"`
}

// NewSlide materializes a slide template into slides/<name>.html. Names are
// normalized to the slide_NN convention; re-running with the same inputs
// overwrites with identical content.
func (m *Manager) NewSlide(projectName, name, templateRef string, values render.Placeholders) (*MaterializeResult, error) {
	p, err := m.Get(projectName)
	if err != nil {
		return nil, err
	}
	info, err := m.findTemplate(resource.Slides, templateRef, defaultSlideTemplate)
	if err != nil {
		return nil, err
	}

	fileName := normalizeName(name, "slide_", ".html")
	content, err := render.MaterializeHTML(info.Path, render.HTMLContext{
		Theme:      m.projectTheme(p),
		BaseCSS:    theme.SlideBaseCSS,
		PageNumber: pageNumber(fileName),
	}, values)
	if err != nil {
		return nil, err
	}

	return m.write(p, info, filepath.Join(p.SlidesDir(), fileName), content, 0o644)
}

// NewPage materializes a report page template into report_pages/<name>.html.
func (m *Manager) NewPage(projectName, name, templateRef string, values render.Placeholders) (*MaterializeResult, error) {
	p, err := m.Get(projectName)
	if err != nil {
		return nil, err
	}
	info, err := m.findTemplate(resource.Reports, templateRef, defaultPageTemplate)
	if err != nil {
		return nil, err
	}

	fileName := normalizeName(name, "page_", ".html")
	content, err := render.MaterializeHTML(info.Path, render.HTMLContext{
		Theme:      m.projectTheme(p),
		BaseCSS:    theme.ReportBaseCSS,
		PageNumber: pageNumber(fileName),
	}, values)
	if err != nil {
		return nil, err
	}

	return m.write(p, info, filepath.Join(p.ReportPagesDir(), fileName), content, 0o644)
}

// NewChart materializes a chart template into plots/<name>.py with its output
// file names rebound to the chart name. Scripts are written executable.
func (m *Manager) NewChart(projectName, name, templateRef string) (*MaterializeResult, error) {
	p, err := m.Get(projectName)
	if err != nil {
		return nil, err
	}
	info, err := m.findTemplate(resource.Charts, templateRef, defaultChartTemplate)
	if err != nil {
		return nil, err
	}

	chartName := strings.TrimSuffix(name, ".py")
	if chartName == "" {
		chartName = info.Name
	}
	content, err := render.MaterializeChart(info.Path, info.Name, chartName)
	if err != nil {
		return nil, err
	}
	content = render.RebindChartStyle(content, m.projectTheme(p))

	return m.write(p, info, filepath.Join(p.PlotsDir(), chartName+".py"), content, 0o755)
}

// NewOutline materializes an outline template into the project root. The
// catalog frontmatter never ships with the project copy.
func (m *Manager) NewOutline(projectName, name, templateRef string, values render.Placeholders) (*MaterializeResult, error) {
	p, err := m.Get(projectName)
	if err != nil {
		return nil, err
	}
	info, err := m.findTemplate(resource.Outlines, templateRef, defaultOutlineTemplate)
	if err != nil {
		return nil, err
	}

	merged := render.Placeholders{
		"title":  Humanize(p.Name),
		"author": m.ws.Config.Author,
		"theme":  m.projectTheme(p),
	}
	for key, value := range values {
		merged[key] = value
	}
	content, err := render.MaterializeMarkdown(info.Path, merged)
	if err != nil {
		return nil, err
	}
	content = catalog.StripFrontmatter(content)

	fileName := strings.TrimSuffix(name, ".md")
	if fileName == "" {
		fileName = "outline"
	}
	return m.write(p, info, filepath.Join(p.Dir, fileName+".md"), content, 0o644)
}

func (m *Manager) findTemplate(kind resource.Kind, ref, fallback string) (*catalog.Info, error) {
	if ref == "" {
		ref = fallback
	}
	return m.registry.Find(kind, ref)
}

// projectTheme is the active theme name for materialization, with the
// workspace default standing in for a project whose theme folder is empty.
func (m *Manager) projectTheme(p *Project) string {
	if name, ok := p.ActiveTheme(); ok {
		return name
	}
	return m.ws.Config.DefaultTheme
}

func (m *Manager) write(p *Project, info *catalog.Info, path, content string, perm os.FileMode) (*MaterializeResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return &MaterializeResult{Project: p.Name, Template: info.Name, Path: path}, nil
}

// normalizeName converts a requested page name to the prefixed on-disk file
// name: "7" becomes slide_07.html, "slide_07" and "slide_07.html" are
// already conformant.
func normalizeName(name, prefix, ext string) string {
	name = strings.TrimSuffix(name, ext)
	if !strings.HasPrefix(name, prefix) {
		name = prefix + zeroPad(name)
	}
	return name + ext
}

// zeroPad pads purely numeric names to two digits.
func zeroPad(name string) string {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return "0" + name
	}
	return name
}

// pageNumber extracts the trailing digit run of the file stem, for the
// [PAGE_NUMBER] binding. Empty when the name carries no number.
func pageNumber(fileName string) string {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	end := len(stem)
	start := end
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == end {
		return ""
	}
	number := stem[start:end]
	if len(number) == 1 {
		number = "0" + number
	}
	return number
}
