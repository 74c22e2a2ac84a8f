// Package mcp provides a Model Context Protocol server for dayone.
// It exposes entry creation and template discovery as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/dayone/internal/template"
)

// Settings carries the resolved configuration the tools build entries with.
type Settings struct {
	// TimeZone is the zone new entries are recorded in. Nil means UTC.
	TimeZone *time.Location
	// EntriesDir is the default save directory. Empty means WorkDir/entries.
	EntriesDir string
	// WorkDir anchors relative directories and the default entries directory.
	WorkDir string
	// LineEnding replaces line breaks in entry text. Empty means the platform default.
	LineEnding string
	// Templates resolves project, global and built-in templates.
	Templates *template.Resolver
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// NewServer creates an MCP server with all dayone tools registered.
func NewServer(version string, settings Settings) *mcp.Server {
	settings = settings.withDefaults()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dayone",
		Version: version,
	}, nil)
	registerTools(server, settings)
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

// writeAnnotations returns annotations for create_entry. Saving with the
// same id replaces the file, so the tool is idempotent but not additive only.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all dayone tools to the server.
func registerTools(server *mcp.Server, settings Settings) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_entry",
		Description: "Write a Day One journal entry (.doentry) with text and an optional location. Returns the entry ID and the file path.",
		Annotations: writeAnnotations(),
	}, handleCreateEntry(settings))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_entry",
		Description: "Render a Day One journal entry without writing it. Returns the .doentry content.",
		Annotations: readOnlyAnnotations(),
	}, handlePreviewEntry(settings))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the entry templates in effect: built-in, global and project, with overrides.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(settings))
}
