package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/dayone/internal/output"
	"github.com/gorewood/dayone/internal/template"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List entry templates",
		Long: `List the templates entries are rendered with.

Templates are resolved in order:
  1. .dayone/templates/<name>.tmpl (project-local)
  2. ~/.config/dayone/templates/<name>.tmpl (user global)
  3. Built-in templates

The body template lays out the entry; the location template is spliced
into it at {{Location}} when the entry has a location.

Examples:
  dayone templates
  dayone templates show body`,
		Args: cobra.NoArgs,
		RunE: runTemplatesList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a resolved template",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplatesShow,
	})

	return cmd
}

// runTemplatesList lists all templates with their source.
func runTemplatesList(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}

	infos, err := settings.templates.List()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("listing templates", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"templates": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}

// runTemplatesShow prints one resolved template.
func runTemplatesShow(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := settings.templates.Load(args[0])
	if err != nil {
		var exitErr *output.ExitError
		if errors.Is(err, template.ErrNotFound) {
			exitErr = output.NewUserError(fmt.Sprintf("template %q not found. Run 'dayone templates' to see available templates", args[0]))
		} else {
			exitErr = output.NewSystemErrorWithCause("loading template", err)
		}
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"name":        tmpl.Name,
			"description": tmpl.Description,
			"version":     tmpl.Version,
			"source":      tmpl.Source,
			"tokens":      tmpl.Tokens(),
			"content":     tmpl.Content,
		})
	}

	printer.Print("%s", tmpl.Content)
	return nil
}
