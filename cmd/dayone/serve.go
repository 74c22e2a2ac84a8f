package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	dayonemcp "github.com/gorewood/dayone/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run dayone as a Model Context Protocol (MCP) server over stdio.

This lets any MCP-capable agent write journal entries.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "dayone": {
        "command": "dayone",
        "args": ["serve"]
      }
    }
  }

Available tools: create_entry, preview_entry, list_templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			server := dayonemcp.NewServer(buildVersion(), dayonemcp.Settings{
				TimeZone:   settings.zone,
				EntriesDir: settings.cfg.EntriesDir,
				WorkDir:    settings.workDir,
				LineEnding: settings.cfg.LineBreak(),
				Templates:  settings.templates,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
