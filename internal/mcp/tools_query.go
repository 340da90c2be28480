package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/resource"
)

// --- get_projects ---

// GetProjectsInput is the input for the get_projects tool (no parameters needed).
type GetProjectsInput struct{}

// ProjectSummary is one project in a listing.
type ProjectSummary struct {
	Name  string `json:"name"            jsonschema:"project name"`
	Path  string `json:"path"            jsonschema:"project directory"`
	Theme string `json:"theme,omitempty" jsonschema:"active theme name"`
}

// GetProjectsOutput is the output for the get_projects tool.
type GetProjectsOutput struct {
	Count    int              `json:"count"              jsonschema:"number of projects"`
	Projects []ProjectSummary `json:"projects,omitempty" jsonschema:"projects in the workspace"`
}

func handleGetProjects(manager *project.Manager) mcp.ToolHandlerFor[GetProjectsInput, GetProjectsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ GetProjectsInput) (*mcp.CallToolResult, GetProjectsOutput, error) {
		summaries := manager.List()
		out := GetProjectsOutput{Count: len(summaries)}
		for _, s := range summaries {
			out.Projects = append(out.Projects, ProjectSummary{Name: s.Name, Path: s.Path, Theme: s.Theme})
		}
		return nil, out, nil
	}
}

// --- get_themes ---

// GetThemesInput is the input for the get_themes tool.
type GetThemesInput struct {
	Names []string `json:"names,omitempty" jsonschema:"restrict the listing to these theme names"`
}

// ThemeSummary is one theme in a listing.
type ThemeSummary struct {
	Name string `json:"name" jsonschema:"theme name"`
	Dir  string `json:"dir"  jsonschema:"directory holding the theme files"`
	Tier string `json:"tier" jsonschema:"precedence tier: user, legacy, or system"`
}

// GetThemesOutput is the output for the get_themes tool.
type GetThemesOutput struct {
	Count  int            `json:"count"            jsonschema:"number of themes"`
	Themes []ThemeSummary `json:"themes,omitempty" jsonschema:"available themes"`
}

func handleGetThemes(manager *project.Manager) mcp.ToolHandlerFor[GetThemesInput, GetThemesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GetThemesInput) (*mcp.CallToolResult, GetThemesOutput, error) {
		themes := manager.Themes().List(input.Names...)
		out := GetThemesOutput{Count: len(themes)}
		for _, t := range themes {
			out.Themes = append(out.Themes, ThemeSummary{Name: t.Name, Dir: t.Dir, Tier: string(t.Tier)})
		}
		return nil, out, nil
	}
}

// --- get_templates ---

// GetTemplatesInput is the input for the get_templates tool.
type GetTemplatesInput struct {
	Type  string   `json:"type"            jsonschema:"template kind: slides, reports, charts, or outlines"`
	Names []string `json:"names,omitempty" jsonschema:"restrict the listing to these template names"`
}

// TemplateSummary is one template in a listing.
type TemplateSummary struct {
	Name     string `json:"name"     jsonschema:"template name (file stem)"`
	File     string `json:"file"     jsonschema:"template file name"`
	Path     string `json:"path"     jsonschema:"full template path"`
	Metadata string `json:"metadata" jsonschema:"one-line description"`
	Tier     string `json:"tier"     jsonschema:"precedence tier: user, legacy, or system"`
}

// GetTemplatesOutput is the output for the get_templates tool.
type GetTemplatesOutput struct {
	Count     int               `json:"count"               jsonschema:"number of templates"`
	Templates []TemplateSummary `json:"templates,omitempty" jsonschema:"available templates"`
}

func handleGetTemplates(manager *project.Manager) mcp.ToolHandlerFor[GetTemplatesInput, GetTemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GetTemplatesInput) (*mcp.CallToolResult, GetTemplatesOutput, error) {
		infos, err := manager.Registry().List(resource.Kind(input.Type), input.Names...)
		if err != nil {
			return nil, GetTemplatesOutput{}, fmt.Errorf("listing templates: %w", err)
		}
		out := GetTemplatesOutput{Count: len(infos)}
		for _, info := range infos {
			out.Templates = append(out.Templates, TemplateSummary{
				Name:     info.Name,
				File:     info.File,
				Path:     info.Path,
				Metadata: info.Metadata,
				Tier:     string(info.Tier),
			})
		}
		return nil, out, nil
	}
}
