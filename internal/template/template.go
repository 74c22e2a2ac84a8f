package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ext is the file extension of template files.
const Ext = ".tmpl"

// Names of the templates an entry is rendered from.
const (
	Body     = "body"
	Location = "location"
)

// ErrNotFound is returned when no source provides the requested template.
var ErrNotFound = errors.New("template not found")

var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_-]+)\}\}`)

// Template represents an entry template with metadata and content.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     int    `yaml:"version,omitempty"`

	// Content is everything after the frontmatter, byte for byte.
	Content string `yaml:"-"`

	// Source is SourceProject, SourceGlobal or SourceBuiltin.
	Source string `yaml:"-"`
}

// Info provides template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"`
}

// UnresolvedError is returned by Render when the template uses tokens that
// have no value.
type UnresolvedError struct {
	Template string
	Tokens   []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("template %q has unresolved tokens: %s", e.Template, strings.Join(e.Tokens, ", "))
}

// Tokens returns the unique token names used in the template, in order of
// first appearance.
func (t *Template) Tokens() []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, match := range tokenPattern.FindAllStringSubmatch(t.Content, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			tokens = append(tokens, match[1])
		}
	}
	return tokens
}

// Render substitutes {{key}} with vars[key] in a single pass over the
// content. Substituted values are never rescanned, so values containing
// braces come through unchanged. Every token in the template must have a
// value; extra keys in vars are ignored.
func (t *Template) Render(vars map[string]string) (string, error) {
	var missing []string
	for _, token := range t.Tokens() {
		if _, ok := vars[token]; !ok {
			missing = append(missing, token)
		}
	}
	if len(missing) > 0 {
		return "", &UnresolvedError{Template: t.Name, Tokens: missing}
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, "{{"+key+"}}", vars[key])
	}
	return strings.NewReplacer(pairs...).Replace(t.Content), nil
}

// Resolver finds templates by name across the project, global and built-in
// sources. Empty directories are skipped.
type Resolver struct {
	ProjectDir string
	GlobalDir  string
}

// NewResolver creates a Resolver for the given working and configuration
// directories. Either may be empty.
func NewResolver(workDir, configDir string) *Resolver {
	r := &Resolver{}
	if workDir != "" {
		r.ProjectDir = filepath.Join(workDir, ".dayone", "templates")
	}
	if configDir != "" {
		r.GlobalDir = filepath.Join(configDir, "templates")
	}
	return r
}

// Load finds and loads a template by name.
// A template file that exists but cannot be read or parsed is an error;
// it does not fall through to the next source.
func (r *Resolver) Load(name string) (*Template, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid template name %q", name)
	}

	for _, src := range r.sources() {
		tmpl, err := src.load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return tmpl, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// List returns all available templates. Built-ins shadowed by a project or
// global template are reported through the overriding entry's Overrides.
func (r *Resolver) List() ([]Info, error) {
	seen := make(map[string]int)
	var templates []Info

	for _, src := range r.sources() {
		infos, err := src.list()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, info := range infos {
			idx, exists := seen[info.Name]
			switch {
			case !exists:
				seen[info.Name] = len(templates)
				templates = append(templates, info)
			case src.name == SourceBuiltin:
				templates[idx].Overrides = SourceBuiltin
			}
		}
	}

	return templates, nil
}

func (r *Resolver) sources() []source {
	var sources []source
	if r.ProjectDir != "" {
		sources = append(sources, dirSource(SourceProject, r.ProjectDir))
	}
	if r.GlobalDir != "" {
		sources = append(sources, dirSource(SourceGlobal, r.GlobalDir))
	}
	return append(sources, builtinSource)
}

// parseTemplate parses a template from raw content with optional YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = content
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by "---" lines at the very start of the file;
// either line ending is accepted on the delimiters. Content is returned
// untouched because leading tabs and the trailing newline are part of the
// rendered output.
func splitFrontmatter(raw string) (frontmatter, content string) {
	rest, ok := cutDelimiter(raw)
	if !ok {
		return "", raw
	}
	if after, ok := cutDelimiter(rest); ok {
		return "", after
	}

	for offset := 0; ; {
		idx := strings.Index(rest[offset:], "\n---")
		if idx < 0 {
			return "", raw
		}
		lineStart := offset + idx + 1
		if after, ok := cutDelimiter(rest[lineStart:]); ok {
			return strings.TrimSpace(rest[:lineStart]), after
		}
		offset = lineStart
	}
}

// cutDelimiter strips a leading "---" line ending in LF or CRLF.
func cutDelimiter(s string) (string, bool) {
	if after, ok := strings.CutPrefix(s, "---\r\n"); ok {
		return after, true
	}
	return strings.CutPrefix(s, "---\n")
}
