package entry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/dayone/internal/template"
)

type stubTemplates map[string]*template.Template

func (s stubTemplates) Load(name string) (*template.Template, error) {
	tmpl, ok := s[name]
	if !ok {
		return nil, template.ErrNotFound
	}
	return tmpl, nil
}

func TestRender_WithoutLocation(t *testing.T) {
	e := newTestEntry(t, Options{})
	e.SetText("Hello <br> World")

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`,
		`<plist version="1.0">`,
		`<dict>`,
		"\t<key>Activity</key>",
		"\t<string>Stationary</string>",
		"\t<key>Creation Date</key>",
		"\t<date>2026-03-14T15:09:26Z</date>",
		"\t<key>Creator</key>",
		"\t<dict>",
		"\t\t<key>Device Agent</key>",
		"\t\t<string>DayOne Go</string>",
		"\t\t<key>Generation Date</key>",
		"\t\t<date>2026-03-14T15:09:26Z</date>",
		"\t\t<key>Host Name</key>",
		"\t\t<string>DayOne Go</string>",
		"\t\t<key>OS Agent</key>",
		"\t\t<string>DayOne Go</string>",
		"\t\t<key>Software Agent</key>",
		"\t\t<string>DayOne Go " + Version + "</string>",
		"\t</dict>",
		"\t<key>Entry Text</key>",
		"\t<string>Hello ",
		" World</string>",
		"\t<key>Starred</key>",
		"\t<false/>",
		"\t<key>Time Zone</key>",
		"\t<string>CEST</string>",
		"\t<key>UUID</key>",
		"\t<string>" + testID + "</string>",
		`</dict>`,
		`</plist>`,
		``,
	}, "\n")

	if got != want {
		t.Errorf("Render() mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_WithLocation(t *testing.T) {
	e := newTestEntry(t, Options{})
	loc := testLocation()
	loc.Name = "Café <Mitte>"
	if err := e.SetLocation(loc); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"\t<key>Location</key>\n\t<dict>\n",
		"<string>Mitte</string>",
		"<string>Germany</string>",
		"<real>52.52</real>",
		"<string>Berlin</string>",
		"<real>13.405</real>",
		"<string>Café &lt;Mitte&gt;</string>",
		"\t</dict>\n\t<key>Starred</key>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(got, "{{") {
		t.Errorf("Render() left unresolved tokens:\n%s", got)
	}
}

func TestRender_NoStrayTokens(t *testing.T) {
	e := newTestEntry(t, Options{})
	e.SetText("plain")

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(got, "{{") || strings.Contains(got, "}}") {
		t.Errorf("Render() left a placeholder:\n%s", got)
	}
	if strings.Contains(got, "Location") || strings.Contains(got, "Latitude") {
		t.Errorf("Render() without location should not contain location fields:\n%s", got)
	}
}

func TestRender_TextWithBracesIsNotSubstituted(t *testing.T) {
	e := newTestEntry(t, Options{})
	e.SetText("my id is {{UUID}}")

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "<string>my id is {{UUID}}</string>") {
		t.Errorf("entry text should be written verbatim, got:\n%s", got)
	}
}

func TestRender_TemplateErrors(t *testing.T) {
	body := &template.Template{Name: "body", Content: "{{UUID}} {{Location}}"}
	tests := []struct {
		name          string
		templates     stubTemplates
		withLocation  bool
		wantUnresolve bool
	}{
		{name: "missing body", templates: stubTemplates{}},
		{name: "missing location", templates: stubTemplates{"body": body}, withLocation: true},
		{
			name:          "unknown token in body",
			templates:     stubTemplates{"body": {Name: "body", Content: "{{UUID}} {{Weather}}"}},
			wantUnresolve: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEntry(t, Options{Templates: tt.templates})
			if tt.withLocation {
				if err := e.SetLocation(testLocation()); err != nil {
					t.Fatalf("SetLocation() error = %v", err)
				}
			}

			_, err := e.Render()
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("Render() error = %v, want *IOError", err)
			}
			var unresolved *template.UnresolvedError
			if got := errors.As(err, &unresolved); got != tt.wantUnresolve {
				t.Errorf("errors.As(UnresolvedError) = %v, want %v (err = %v)", got, tt.wantUnresolve, err)
			}
		})
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	templates := stubTemplates{
		"body":     {Name: "body", Content: "{{UUID}}|{{Entry-Text}}|{{Location}}"},
		"location": {Name: "location", Content: "{{City}}@{{Latitude}},{{Longitude}}"},
	}
	e := newTestEntry(t, Options{Templates: templates})
	e.SetText("x")
	if err := e.SetLocation(testLocation()); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := testID + "|x|Berlin@52.52,13.405"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ProjectTemplateWithCRLF(t *testing.T) {
	workDir := t.TempDir()
	resolver := template.NewResolver(workDir, "")
	if err := os.MkdirAll(resolver.ProjectDir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "---\r\nname: body\r\n---\r\n<x>{{UUID}}</x>{{Location}}\r\n"
	if err := os.WriteFile(filepath.Join(resolver.ProjectDir, template.Body+template.Ext), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	e := newTestEntry(t, Options{Templates: resolver})

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<x>" + testID + "</x>\r\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
