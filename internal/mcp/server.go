// Package mcp provides a Model Context Protocol server for decksmith.
// It exposes project scaffolding operations as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/decksmith/decksmith/internal/project"
)

// NewServer creates an MCP server with all decksmith tools registered.
func NewServer(version string, manager *project.Manager) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "decksmith",
		Version: version,
	}, nil)
	registerTools(server, manager)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all decksmith tools to the server.
func registerTools(server *mcp.Server, manager *project.Manager) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_projects",
		Description: "List all projects in the workspace with their active themes.",
		Annotations: readOnlyAnnotations(),
	}, handleGetProjects(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_themes",
		Description: "List available themes across user and system resources. Optionally restrict to specific names.",
		Annotations: readOnlyAnnotations(),
	}, handleGetThemes(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_templates",
		Description: "List templates of a kind (slides, reports, charts, outlines) with their one-line descriptions.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTemplates(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project with the full directory skeleton, theme assets, and a starter outline.",
		Annotations: writeAnnotations(),
	}, handleCreateProject(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "init_from_template",
		Description: "Materialize a template into a project: a slide, report page, chart script, or outline.",
		Annotations: writeAnnotations(),
	}, handleInitFromTemplate(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "swap_theme",
		Description: "Replace a project's theme assets and rewrite theme references in its pages.",
		Annotations: writeAnnotations(),
	}, handleSwapTheme(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_pdf",
		Description: "Render a project's slides or report pages to a PDF via the configured renderer.",
		Annotations: writeAnnotations(),
	}, handleGeneratePDF(manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_viewer",
		Description: "Launch the live viewer for a project and return its URL.",
		Annotations: writeAnnotations(),
	}, handleStartViewer(manager))
}
