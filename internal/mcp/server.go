// Package mcp provides a Model Context Protocol server for haven.
// It exposes mood journal operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hearthwood/haven/internal/journal"
)

// NewServer creates an MCP server with all haven tools registered.
// suggestedTags seeds the log tool's description so agents reach for
// the configured vocabulary before inventing their own.
func NewServer(version string, store *journal.Store, suggestedTags []string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "haven",
		Version: version,
	}, nil)
	registerTools(server, store, suggestedTags)
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

// registerTools adds all haven tools to the server.
func registerTools(server *mcp.Server, store *journal.Store, suggestedTags []string) {
	logDescription := "Record a mood entry on the 1-5 scale with an optional note and tags. " +
		"Appends to the journal file."
	if len(suggestedTags) > 0 {
		logDescription += " Suggested tags: " + strings.Join(suggestedTags, ", ") + "."
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log",
		Description: logDescription,
		Annotations: writeAnnotations(),
	}, handleLog(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent",
		Description: "List the most recent mood entries, newest first. Returns the last N entries (default 4).",
		Annotations: readOnlyAnnotations(),
	}, handleRecent(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "day",
		Description: "List the mood entries on one calendar day. Defaults to today when no date is given.",
		Annotations: readOnlyAnnotations(),
	}, handleDay(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "week",
		Description: "Summarize a Monday-to-Sunday week as per-day happy/neutral/sad counts. Defaults to the current week.",
		Annotations: readOnlyAnnotations(),
	}, handleWeek(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calendar",
		Description: "Lay out a month as a Monday-start grid of days flagged with whether any entry exists. Defaults to the current month.",
		Annotations: readOnlyAnnotations(),
	}, handleCalendar(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "trends",
		Description: "Compute mood statistics over a time range: entry count and mean mood. Supports 7d, 30d, and all (default 30d).",
		Annotations: readOnlyAnnotations(),
	}, handleTrends(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show journal file state: path, existence, entry count, and row-level load statistics.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store))
}
