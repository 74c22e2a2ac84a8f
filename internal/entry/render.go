package entry

import "github.com/gorewood/dayone/internal/template"

// Render produces the .doentry text for the current state of the entry.
// Render does not modify the entry.
func (e *Entry) Render() (string, error) {
	body, err := e.loadTemplate(template.Body)
	if err != nil {
		return "", err
	}

	location, err := e.renderLocation()
	if err != nil {
		return "", err
	}

	text, err := body.Render(map[string]string{
		"Creation_Date":           e.CreationDate(),
		"Creator_Device-Agent":    e.creator.DeviceAgent,
		"Creator_Generation-Date": e.creator.GenerationDate,
		"Creator_Host-Name":       e.creator.HostName,
		"Creator_OS-Agent":        e.creator.OSAgent,
		"Creator_Software-Agent":  e.creator.SoftwareAgent,
		"UUID":                    e.id,
		"Time-Zone":               e.TimeZone(),
		"Activity":                e.activity,
		"Entry-Text":              e.text,
		"Location":                location,
	})
	if err != nil {
		return "", &IOError{Op: "render template", Path: body.Name, Err: err}
	}
	return text, nil
}

// renderLocation renders the location fragment, or "" when no location is set.
func (e *Entry) renderLocation() (string, error) {
	if e.location == nil {
		return "", nil
	}

	fragment, err := e.loadTemplate(template.Location)
	if err != nil {
		return "", err
	}

	text, err := fragment.Render(e.location.vars())
	if err != nil {
		return "", &IOError{Op: "render template", Path: fragment.Name, Err: err}
	}
	return text, nil
}

func (e *Entry) loadTemplate(name string) (*template.Template, error) {
	tmpl, err := e.templates.Load(name)
	if err != nil {
		return nil, &IOError{Op: "load template", Path: name, Err: err}
	}
	return tmpl, nil
}
