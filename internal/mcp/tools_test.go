package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/workspace"
)

// --- Test helpers ---

func makeTestManager(t *testing.T) *project.Manager {
	t.Helper()
	base := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(base, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("resources/templates/slides/01_base_slide.html",
		"<!-- Use case: General content slide -->\n<link rel=\"stylesheet\" href=\"../slide_base.css\">\n<h1>[TITLE]</h1>\n")
	write("resources/templates/slides/slide_base.css", "/* base */\n")
	write("resources/templates/reports/06_executive_summary.html",
		"<link rel=\"stylesheet\" href=\"../report_base.css\">\n<h1>[TITLE]</h1>\n")
	write("resources/templates/reports/report_base.css", "/* base */\n")
	write("resources/templates/outlines/outline_slides.md",
		"---\ndescription: Outline skeleton\n---\n# {title}\n")
	for _, name := range []string{"acme_corp", "barney"} {
		write("resources/themes/core/"+name+"/"+name+"_theme.css", "/* "+name+" */\n")
	}

	ws, err := workspace.Open(base)
	if err != nil {
		t.Fatal(err)
	}
	return project.NewManager(ws)
}

// --- create_project ---

func TestHandleCreateProject(t *testing.T) {
	manager := makeTestManager(t)
	handler := handleCreateProject(manager)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{
		Name:  "Q4 Review",
		Theme: "barney",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Q4_Review" {
		t.Errorf("Name = %q, want sanitized Q4_Review", out.Name)
	}
	if out.Theme != "barney" {
		t.Errorf("Theme = %q", out.Theme)
	}
	if _, err := os.Stat(filepath.Join(out.Path, "theme", "barney_theme.css")); err != nil {
		t.Errorf("theme not installed: %v", err)
	}
}

func TestHandleCreateProject_DuplicateIsError(t *testing.T) {
	manager := makeTestManager(t)
	handler := handleCreateProject(manager)

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{Name: "deck"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{Name: "deck"}); err == nil {
		t.Error("duplicate create must error")
	}
}

func TestHandleCreateProject_RequiresName(t *testing.T) {
	handler := handleCreateProject(makeTestManager(t))
	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{}); err == nil {
		t.Error("empty name must error")
	}
}

// --- listings ---

func TestHandleGetProjects(t *testing.T) {
	manager := makeTestManager(t)
	if _, err := manager.Create("alpha", "barney", ""); err != nil {
		t.Fatal(err)
	}

	handler := handleGetProjects(manager)
	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GetProjectsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Projects[0].Name != "alpha" {
		t.Errorf("projects = %+v", out.Projects)
	}
	if out.Projects[0].Theme != "barney" {
		t.Errorf("theme = %q", out.Projects[0].Theme)
	}
}

func TestHandleGetThemes(t *testing.T) {
	handler := handleGetThemes(makeTestManager(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GetThemesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}

	_, out, err = handler(context.Background(), &mcp.CallToolRequest{}, GetThemesInput{Names: []string{"barney"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Themes[0].Name != "barney" {
		t.Errorf("filtered themes = %+v", out.Themes)
	}
}

func TestHandleGetTemplates(t *testing.T) {
	handler := handleGetTemplates(makeTestManager(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GetTemplatesInput{Type: "slides"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Templates[0].Name != "01_base_slide" {
		t.Fatalf("templates = %+v", out.Templates)
	}
	if out.Templates[0].Metadata != "General content slide" {
		t.Errorf("metadata = %q", out.Templates[0].Metadata)
	}

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetTemplatesInput{Type: "themes"}); err == nil {
		t.Error("themes is not a template kind")
	}
}

// --- init_from_template ---

func TestHandleInitFromTemplate(t *testing.T) {
	manager := makeTestManager(t)
	if _, err := manager.Create("deck", "barney", ""); err != nil {
		t.Fatal(err)
	}

	handler := handleInitFromTemplate(manager)
	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, InitFromTemplateInput{
		Project: "deck",
		Type:    "slides",
		Name:    "2",
		Values:  map[string]string{"TITLE": "Findings"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(out.Path) != "slide_02.html" {
		t.Errorf("path = %q", out.Path)
	}

	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Findings") {
		t.Errorf("placeholder not applied:\n%s", data)
	}
}

func TestHandleInitFromTemplate_UnknownKind(t *testing.T) {
	handler := handleInitFromTemplate(makeTestManager(t))
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, InitFromTemplateInput{
		Project: "deck",
		Type:    "sounds",
		Name:    "x",
	})
	if err == nil {
		t.Error("unknown kind must error")
	}
}

// --- swap_theme ---

func TestHandleSwapTheme(t *testing.T) {
	manager := makeTestManager(t)
	if _, err := manager.Create("deck", "acme_corp", ""); err != nil {
		t.Fatal(err)
	}

	handler := handleSwapTheme(manager)
	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, SwapThemeInput{
		Project: "deck",
		Theme:   "barney",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OldTheme != "acme_corp" || out.NewTheme != "barney" {
		t.Errorf("swap = %q -> %q", out.OldTheme, out.NewTheme)
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, SwapThemeInput{
		Project: "deck",
		Theme:   "ghost",
	})
	if err == nil {
		t.Error("unknown theme must error")
	}
}

// --- generate_pdf ---

func TestHandleGeneratePDF_MissingProject(t *testing.T) {
	handler := handleGeneratePDF(makeTestManager(t))
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GeneratePDFInput{Project: "ghost"})
	if err == nil {
		t.Error("missing project must error")
	}
}

// --- start_viewer ---

func TestHandleStartViewer_MissingProject(t *testing.T) {
	handler := handleStartViewer(makeTestManager(t))
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, StartViewerInput{Project: "ghost"})
	if err == nil {
		t.Error("missing project must error")
	}
}
