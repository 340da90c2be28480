// Package main provides the entry point for the decksmith CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	decksmithmcp "github.com/decksmith/decksmith/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run decksmith as a Model Context Protocol (MCP) server over stdio.

This exposes project scaffolding as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "decksmith": {
        "command": "decksmith",
        "args": ["serve"]
      }
    }
  }

Available tools: get_projects, get_themes, get_templates, create_project,
init_from_template, swap_theme, generate_pdf, start_viewer`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}
			server := decksmithmcp.NewServer(buildVersion(), manager)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
