package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/decksmith/decksmith/internal/export"
	"github.com/decksmith/decksmith/internal/preview"
	"github.com/decksmith/decksmith/internal/project"
)

// --- create_project ---

// CreateProjectInput is the input for the create_project tool.
type CreateProjectInput struct {
	Name        string `json:"name"                  jsonschema:"project name; unsafe characters are sanitized"`
	Theme       string `json:"theme,omitempty"       jsonschema:"theme to install (workspace default when omitted)"`
	Description string `json:"description,omitempty" jsonschema:"short description bound into the starter outline"`
}

// CreateProjectOutput is the output for the create_project tool.
type CreateProjectOutput struct {
	Name     string   `json:"name"               jsonschema:"sanitized project name"`
	Path     string   `json:"path"               jsonschema:"project directory"`
	Theme    string   `json:"theme,omitempty"    jsonschema:"theme actually installed"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"non-fatal problems during creation"`
}

func handleCreateProject(manager *project.Manager) mcp.ToolHandlerFor[CreateProjectInput, CreateProjectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, CreateProjectOutput, error) {
		if input.Name == "" {
			return nil, CreateProjectOutput{}, errors.New("name is required")
		}
		result, err := manager.Create(input.Name, input.Theme, input.Description)
		if err != nil {
			return nil, CreateProjectOutput{}, fmt.Errorf("creating project: %w", err)
		}
		return nil, CreateProjectOutput{
			Name:     result.Name,
			Path:     result.Path,
			Theme:    result.Theme,
			Warnings: result.Warnings,
		}, nil
	}
}

// --- init_from_template ---

// InitFromTemplateInput is the input for the init_from_template tool.
type InitFromTemplateInput struct {
	Project  string            `json:"project"            jsonschema:"project to materialize into"`
	Type     string            `json:"type"               jsonschema:"template kind: slides, reports, charts, or outlines"`
	Name     string            `json:"name"               jsonschema:"name for the materialized file, e.g. slide_02 or revenue"`
	Template string            `json:"template,omitempty" jsonschema:"template to use (kind default when omitted)"`
	Values   map[string]string `json:"values,omitempty"   jsonschema:"placeholder values, e.g. TITLE for pages or title for outlines"`
}

// InitFromTemplateOutput is the output for the init_from_template tool.
type InitFromTemplateOutput struct {
	Project  string `json:"project"  jsonschema:"project name"`
	Template string `json:"template" jsonschema:"template used"`
	Path     string `json:"path"     jsonschema:"file written"`
}

func handleInitFromTemplate(manager *project.Manager) mcp.ToolHandlerFor[InitFromTemplateInput, InitFromTemplateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InitFromTemplateInput) (*mcp.CallToolResult, InitFromTemplateOutput, error) {
		var result *project.MaterializeResult
		var err error

		switch input.Type {
		case "slides", "slide":
			result, err = manager.NewSlide(input.Project, input.Name, input.Template, input.Values)
		case "reports", "report", "page":
			result, err = manager.NewPage(input.Project, input.Name, input.Template, input.Values)
		case "charts", "chart":
			result, err = manager.NewChart(input.Project, input.Name, input.Template)
		case "outlines", "outline":
			result, err = manager.NewOutline(input.Project, input.Name, input.Template, input.Values)
		default:
			return nil, InitFromTemplateOutput{}, fmt.Errorf("unknown template kind %q (slides, reports, charts, or outlines)", input.Type)
		}
		if err != nil {
			return nil, InitFromTemplateOutput{}, fmt.Errorf("materializing template: %w", err)
		}

		return nil, InitFromTemplateOutput{
			Project:  result.Project,
			Template: result.Template,
			Path:     result.Path,
		}, nil
	}
}

// --- swap_theme ---

// SwapThemeInput is the input for the swap_theme tool.
type SwapThemeInput struct {
	Project string `json:"project" jsonschema:"project whose theme is replaced"`
	Theme   string `json:"theme"   jsonschema:"new theme name"`
}

// SwapThemeOutput is the output for the swap_theme tool.
type SwapThemeOutput struct {
	Project   string   `json:"project"             jsonschema:"project name"`
	OldTheme  string   `json:"old_theme,omitempty" jsonschema:"theme that was replaced"`
	NewTheme  string   `json:"new_theme"           jsonschema:"theme now installed"`
	Rewritten int      `json:"rewritten"           jsonschema:"number of files whose references were processed"`
	Failures  []string `json:"failures,omitempty"  jsonschema:"files that could not be rewritten"`
}

func handleSwapTheme(manager *project.Manager) mcp.ToolHandlerFor[SwapThemeInput, SwapThemeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SwapThemeInput) (*mcp.CallToolResult, SwapThemeOutput, error) {
		result, err := manager.SwapTheme(input.Project, input.Theme)
		if err != nil {
			return nil, SwapThemeOutput{}, fmt.Errorf("swapping theme: %w", err)
		}
		return nil, SwapThemeOutput{
			Project:   result.Project,
			OldTheme:  result.OldTheme,
			NewTheme:  result.NewTheme,
			Rewritten: len(result.Rewritten),
			Failures:  result.Failures,
		}, nil
	}
}

// --- generate_pdf ---

// GeneratePDFInput is the input for the generate_pdf tool.
type GeneratePDFInput struct {
	Project string `json:"project"          jsonschema:"project to export"`
	Format  string `json:"format,omitempty" jsonschema:"slides (default) or report"`
}

// GeneratePDFOutput is the output for the generate_pdf tool.
type GeneratePDFOutput struct {
	Project string `json:"project" jsonschema:"project name"`
	Format  string `json:"format"  jsonschema:"exported format"`
	Output  string `json:"output"  jsonschema:"path of the written PDF"`
	Pages   int    `json:"pages"   jsonschema:"number of pages rendered"`
}

func handleGeneratePDF(manager *project.Manager) mcp.ToolHandlerFor[GeneratePDFInput, GeneratePDFOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GeneratePDFInput) (*mcp.CallToolResult, GeneratePDFOutput, error) {
		p, err := manager.Get(input.Project)
		if err != nil {
			return nil, GeneratePDFOutput{}, fmt.Errorf("locating project: %w", err)
		}

		format := export.Format(input.Format)
		if input.Format == "" {
			format = export.FormatSlides
		}

		result, err := export.PDF(ctx, manager.Workspace().Config, p.Dir, p.Name, format, "")
		if err != nil {
			return nil, GeneratePDFOutput{}, fmt.Errorf("generating pdf: %w", err)
		}
		return nil, GeneratePDFOutput{
			Project: result.Project,
			Format:  result.Format,
			Output:  result.Output,
			Pages:   result.Pages,
		}, nil
	}
}

// --- start_viewer ---

// StartViewerInput is the input for the start_viewer tool.
type StartViewerInput struct {
	Project string `json:"project"        jsonschema:"project to serve"`
	Port    int    `json:"port,omitempty" jsonschema:"listen port (configured default when omitted)"`
}

// StartViewerOutput is the output for the start_viewer tool.
type StartViewerOutput struct {
	Project string `json:"project" jsonschema:"project name"`
	PID     int    `json:"pid"     jsonschema:"viewer process ID"`
	Port    int    `json:"port"    jsonschema:"listen port"`
	URL     string `json:"url"     jsonschema:"viewer URL"`
}

func handleStartViewer(manager *project.Manager) mcp.ToolHandlerFor[StartViewerInput, StartViewerOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StartViewerInput) (*mcp.CallToolResult, StartViewerOutput, error) {
		p, err := manager.Get(input.Project)
		if err != nil {
			return nil, StartViewerOutput{}, fmt.Errorf("locating project: %w", err)
		}

		result, err := preview.Start(manager.Workspace().Config, p.Dir, p.Name, input.Port)
		if err != nil {
			return nil, StartViewerOutput{}, fmt.Errorf("starting viewer: %w", err)
		}
		return nil, StartViewerOutput{
			Project: result.Project,
			PID:     result.PID,
			Port:    result.Port,
			URL:     result.URL,
		}, nil
	}
}
