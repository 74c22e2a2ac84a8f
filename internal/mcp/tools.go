package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/dayone/internal/template"
)

// --- Shared types ---

// LocationInput is where an entry was written. All fields are required.
type LocationInput struct {
	City      string  `json:"city"      jsonschema:"city, written as the Locality key"`
	Country   string  `json:"country"   jsonschema:"country"`
	Locality  string  `json:"locality"  jsonschema:"region, written as the Administrative Area key"`
	Latitude  float64 `json:"latitude"  jsonschema:"latitude in decimal degrees (non-zero)"`
	Longitude float64 `json:"longitude" jsonschema:"longitude in decimal degrees (non-zero)"`
	Name      string  `json:"name"      jsonschema:"place name"`
}

// --- Create tool ---

// CreateEntryInput is the input for the create_entry tool.
type CreateEntryInput struct {
	Text     string         `json:"text"               jsonschema:"entry text; \\n, \\r\\n and <br> become line breaks (required)"`
	ID       string         `json:"id,omitempty"       jsonschema:"32 hex digit entry ID; generated when empty"`
	Time     *int64         `json:"time,omitempty"     jsonschema:"creation time as Unix seconds; defaults to now"`
	Location *LocationInput `json:"location,omitempty" jsonschema:"where the entry was written"`
	Dir      string         `json:"dir,omitempty"      jsonschema:"directory to save into; defaults to the configured entries directory"`
}

// CreateEntryOutput is the output for the create_entry tool.
type CreateEntryOutput struct {
	ID           string `json:"id"            jsonschema:"entry ID"`
	Path         string `json:"path"          jsonschema:"path of the written .doentry file"`
	CreationDate string `json:"creation_date" jsonschema:"creation date as written to the entry"`
}

func handleCreateEntry(settings Settings) mcp.ToolHandlerFor[CreateEntryInput, CreateEntryOutput] {
	settings = settings.withDefaults()
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
		e, err := buildEntry(settings, input.Text, input.ID, input.Time, input.Location)
		if err != nil {
			return nil, CreateEntryOutput{}, err
		}

		path, err := e.Save(settings.entriesDir(input.Dir))
		if err != nil {
			return nil, CreateEntryOutput{}, fmt.Errorf("saving entry: %w", err)
		}

		return nil, CreateEntryOutput{
			ID:           e.ID(),
			Path:         path,
			CreationDate: e.CreationDate(),
		}, nil
	}
}

// --- Preview tool ---

// PreviewEntryInput is the input for the preview_entry tool.
type PreviewEntryInput struct {
	Text     string         `json:"text"               jsonschema:"entry text (required)"`
	ID       string         `json:"id,omitempty"       jsonschema:"32 hex digit entry ID; generated when empty"`
	Time     *int64         `json:"time,omitempty"     jsonschema:"creation time as Unix seconds; defaults to now"`
	Location *LocationInput `json:"location,omitempty" jsonschema:"where the entry was written"`
}

// PreviewEntryOutput is the output for the preview_entry tool.
type PreviewEntryOutput struct {
	ID           string `json:"id"            jsonschema:"entry ID"`
	CreationDate string `json:"creation_date" jsonschema:"creation date as written to the entry"`
	Content      string `json:"content"       jsonschema:"rendered .doentry content"`
}

func handlePreviewEntry(settings Settings) mcp.ToolHandlerFor[PreviewEntryInput, PreviewEntryOutput] {
	settings = settings.withDefaults()
	return func(_ context.Context, _ *mcp.CallToolRequest, input PreviewEntryInput) (*mcp.CallToolResult, PreviewEntryOutput, error) {
		e, err := buildEntry(settings, input.Text, input.ID, input.Time, input.Location)
		if err != nil {
			return nil, PreviewEntryOutput{}, err
		}

		content, err := e.Render()
		if err != nil {
			return nil, PreviewEntryOutput{}, fmt.Errorf("rendering entry: %w", err)
		}

		return nil, PreviewEntryOutput{
			ID:           e.ID(),
			CreationDate: e.CreationDate(),
			Content:      content,
		}, nil
	}
}

// --- Templates tool ---

// ListTemplatesInput is the input for the list_templates tool (no parameters needed).
type ListTemplatesInput struct{}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Count     int             `json:"count"     jsonschema:"number of templates"`
	Templates []template.Info `json:"templates" jsonschema:"templates with their source"`
}

func handleListTemplates(settings Settings) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	settings = settings.withDefaults()
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		infos, err := settings.Templates.List()
		if err != nil {
			return nil, ListTemplatesOutput{}, fmt.Errorf("listing templates: %w", err)
		}
		return nil, ListTemplatesOutput{Count: len(infos), Templates: infos}, nil
	}
}
