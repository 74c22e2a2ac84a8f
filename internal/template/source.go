package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source names reported by Template.Source and Info.Source.
const (
	SourceProject = "project"
	SourceGlobal  = "global"
	SourceBuiltin = "built-in"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// source is one place templates are looked up in. Directories on disk and
// the templates compiled into the binary are read the same way.
type source struct {
	name string
	root string
	fsys fs.FS
}

// builtinSource serves the compiled-in templates. Resolvers consult it last.
var builtinSource = func() source {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return source{name: SourceBuiltin, root: "templates", fsys: sub}
}()

func dirSource(name, dir string) source {
	return source{name: name, root: dir, fsys: os.DirFS(dir)}
}

// load reads <name>.tmpl from the source. A missing file yields an error
// matching fs.ErrNotExist.
func (s source) load(name string) (*Template, error) {
	file := name + Ext
	path := filepath.Join(s.root, file)

	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	tmpl.Source = s.name
	return tmpl, nil
}

// list describes every template in the source. Unparseable files are skipped.
func (s source) list() ([]Info, error) {
	dirEntries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", s.root, err)
	}

	var templates []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), Ext)
		tmpl, err := s.load(name)
		if err != nil {
			continue
		}

		templates = append(templates, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      s.name,
		})
	}
	return templates, nil
}
