package project

import (
	"os"
	"path/filepath"
	"sort"
)

// Summary is the listing view of a project.
type Summary struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Theme string `json:"theme,omitempty"`
}

// Detail is the inspection view of a project: the summary plus content
// counts derived from the directory tree.
type Detail struct {
	Summary
	Slides      int  `json:"slides"`
	ReportPages int  `json:"report_pages"`
	Charts      int  `json:"charts"`
	Inputs      int  `json:"inputs"`
	HasOutline  bool `json:"has_outline"`
	HasPDF      bool `json:"has_pdf"`
}

// List returns summaries of every project, sorted by name. Projects in the
// deprecated projects/ directory are included; a user_projects/ entry of the
// same name shadows it.
func (m *Manager) List() []Summary {
	seen := map[string]Summary{}
	for _, dir := range []string{m.ws.ProjectsDir(), m.ws.LegacyProjectsDir()} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if _, dup := seen[name]; dup {
				continue
			}
			p := &Project{Name: name, Dir: filepath.Join(dir, name)}
			s := Summary{Name: name, Path: p.Dir}
			s.Theme, _ = p.ActiveTheme()
			seen[name] = s
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Summary, 0, len(names))
	for _, name := range names {
		result = append(result, seen[name])
	}
	return result
}

// Show returns the detailed view of one project.
func (m *Manager) Show(name string) (*Detail, error) {
	p, err := m.Get(name)
	if err != nil {
		return nil, err
	}

	d := &Detail{Summary: Summary{Name: p.Name, Path: p.Dir}}
	d.Theme, _ = p.ActiveTheme()
	d.Slides = countGlob(filepath.Join(p.SlidesDir(), "slide_*.html"))
	d.ReportPages = countGlob(filepath.Join(p.ReportPagesDir(), "*.html"))
	d.Charts = countGlob(filepath.Join(p.PlotsDir(), "*.py"))
	d.Inputs = countGlob(filepath.Join(p.Dir, "input", "*"))
	d.HasOutline = fileExists(filepath.Join(p.Dir, "outline.md"))
	d.HasPDF = countGlob(filepath.Join(p.Dir, "*.pdf")) > 0
	return d, nil
}

func countGlob(pattern string) int {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0
	}
	return len(matches)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
