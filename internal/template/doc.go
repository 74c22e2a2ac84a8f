// Package template loads and renders the text templates a Day One entry is
// written from.
//
// Templates are plain text with {{Token}} placeholders and optional YAML
// frontmatter. They are resolved in order:
//  1. <workdir>/.dayone/templates/<name>.tmpl (project-local)
//  2. <config dir>/templates/<name>.tmpl (user global)
//  3. Built-in templates (embedded in binary)
package template
