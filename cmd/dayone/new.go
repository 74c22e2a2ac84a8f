package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/dayone/internal/entry"
	"github.com/gorewood/dayone/internal/output"
)

// newFlags holds all flag values for the new command.
type newFlags struct {
	id       string
	unix     int64
	hasTime  bool
	dir      string
	debug    bool
	stdin    bool
	dryRun   bool
	location locationFlags
}

// locationFlags holds the raw location flag values.
type locationFlags struct {
	city      string
	country   string
	locality  string
	latitude  string
	longitude string
	place     string
}

// set reports whether at least one location flag was given.
func (l locationFlags) set() bool {
	return l != locationFlags{}
}

// newResult is the JSON output of the new command.
type newResult struct {
	ID           string `json:"id"`
	Path         string `json:"path,omitempty"`
	CreationDate string `json:"creation_date"`
	Content      string `json:"content,omitempty"`
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var (
		flags    newFlags
		timeFlag int64
	)

	cmd := &cobra.Command{
		Use:   "new [text]",
		Short: "Write a new journal entry",
		Long: `Write a new Day One journal entry.

The text may contain line breaks written as \n, \r\n or <br>; they become
real line breaks in the entry. Markup characters are escaped.

A location needs all six of --city, --country, --locality, --lat, --lng
and --place.

Examples:
  dayone new "Hello <br> World"
  dayone new "Back home" --time 1767225600 --dir ~/Journal/entries
  echo "From a pipe" | dayone new --stdin
  dayone new "Lunch" --city Berlin --country Germany --locality Berlin \
    --lat 52.52 --lng 13.405 --place Alexanderplatz
  dayone new "Draft" --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.unix = timeFlag
			flags.hasTime = cmd.Flags().Changed("time")
			return runNew(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.id, "id", "", "Entry ID as 32 hex digits (default: random)")
	cmd.Flags().Int64Var(&timeFlag, "time", 0, "Creation time as Unix seconds (default: now)")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Directory to save into (default: entries_dir or ./entries)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Print a notice after each step")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "Read the entry text from stdin")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the entry instead of writing it")
	cmd.Flags().StringVar(&flags.location.city, "city", "", "Location city")
	cmd.Flags().StringVar(&flags.location.country, "country", "", "Location country")
	cmd.Flags().StringVar(&flags.location.locality, "locality", "", "Location region or administrative area")
	cmd.Flags().StringVar(&flags.location.latitude, "lat", "", "Location latitude")
	cmd.Flags().StringVar(&flags.location.longitude, "lng", "", "Location longitude")
	cmd.Flags().StringVar(&flags.location.place, "place", "", "Location place name")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, args []string, flags newFlags) error {
	printer := newPrinter(cmd)

	text, err := readEntryText(cmd.InOrStdin(), args, flags.stdin)
	if err != nil {
		printer.Error(err)
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}

	e, err := buildNewEntry(settings, printer, text, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		return outputNewDryRun(printer, e)
	}

	dir := flags.dir
	if dir == "" {
		dir = settings.cfg.EntriesDir
	}
	path, err := e.Save(dir)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(newResult{ID: e.ID(), Path: path, CreationDate: e.CreationDate()})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Saved entry %s to %s", e.ID(), path),
	})
}

// readEntryText takes the text from the argument or stdin. Exactly one
// source must be used.
func readEntryText(stdin io.Reader, args []string, fromStdin bool) (string, error) {
	switch {
	case fromStdin && len(args) > 0:
		return "", output.NewUserError("use either a text argument or --stdin, not both")
	case fromStdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", output.NewSystemErrorWithCause("reading stdin", err)
		}
		text := strings.TrimRight(string(data), "\r\n")
		if text == "" {
			return "", output.NewUserError("stdin is empty")
		}
		return text, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", output.NewUserError("entry text required. Pass it as an argument or use --stdin")
	}
}

// buildNewEntry creates the entry and applies text, time and location.
func buildNewEntry(settings *appSettings, printer *output.Printer, text string, flags newFlags) (*entry.Entry, error) {
	e, err := entry.New(entry.Options{
		Debug:      flags.debug || settings.cfg.Debug,
		ID:         flags.id,
		TimeZone:   settings.zone,
		WorkDir:    settings.workDir,
		LineEnding: settings.cfg.LineBreak(),
		Templates:  settings.templates,
		Notifier:   printer,
	})
	if err != nil {
		return nil, err
	}

	e.SetText(text)
	if flags.hasTime {
		e.SetTime(flags.unix)
	}

	if flags.location.set() {
		loc, err := entry.ParseLocation(
			flags.location.city,
			flags.location.country,
			flags.location.locality,
			flags.location.latitude,
			flags.location.longitude,
			flags.location.place,
		)
		if err != nil {
			return nil, err
		}
		if err := e.SetLocation(loc); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// outputNewDryRun prints the rendered entry without writing it.
func outputNewDryRun(printer *output.Printer, e *entry.Entry) error {
	content, err := e.Render()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(newResult{ID: e.ID(), CreationDate: e.CreationDate(), Content: content})
	}
	printer.Print("%s", content)
	return nil
}
