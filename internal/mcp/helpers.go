package mcp

import (
	"path/filepath"

	"github.com/gorewood/dayone/internal/entry"
	"github.com/gorewood/dayone/internal/template"
)

// buildEntry creates an entry from tool input. Validation failures come back
// as *entry.ValidationError so the agent sees which fields to fix.
func buildEntry(settings Settings, text, id string, unix *int64, loc *LocationInput) (*entry.Entry, error) {
	if text == "" {
		return nil, &entry.ValidationError{Fields: []string{"text"}, Message: "text is required"}
	}

	e, err := entry.New(entry.Options{
		ID:         id,
		TimeZone:   settings.TimeZone,
		Now:        settings.Now,
		WorkDir:    settings.WorkDir,
		LineEnding: settings.LineEnding,
		Templates:  settings.Templates,
	})
	if err != nil {
		return nil, err
	}

	e.SetText(text)
	if unix != nil {
		e.SetTime(*unix)
	}
	if loc != nil {
		if err := e.SetLocation(toLocation(*loc)); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func toLocation(in LocationInput) entry.Location {
	return entry.Location{
		City:      in.City,
		Country:   in.Country,
		Locality:  in.Locality,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Name:      in.Name,
	}
}

// entriesDir picks the save directory: the tool argument, then the
// configured directory. Relative paths are anchored at WorkDir. An empty
// result lets the entry fall back to WorkDir/entries.
func (s Settings) entriesDir(dir string) string {
	if dir == "" {
		dir = s.EntriesDir
	}
	if dir == "" || filepath.IsAbs(dir) || s.WorkDir == "" {
		return dir
	}
	return filepath.Join(s.WorkDir, dir)
}

// withDefaults fills in the template resolver when none was configured.
func (s Settings) withDefaults() Settings {
	if s.Templates == nil {
		s.Templates = template.NewResolver(s.WorkDir, "")
	}
	return s
}
