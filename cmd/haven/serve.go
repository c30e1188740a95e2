// Package main provides the entry point for the haven CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/config"
	"github.com/hearthwood/haven/internal/journal"
	havenmcp "github.com/hearthwood/haven/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run haven as a Model Context Protocol (MCP) server over stdio.

This exposes the mood journal as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "haven": {
        "command": "haven",
        "args": ["serve"]
      }
    }
  }

Available tools: log, recent, day, week, calendar, trends, status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store := journal.NewStore(cfg.DataFile, nil)
			server := havenmcp.NewServer(buildVersion(), store, cfg.DefaultTags)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
