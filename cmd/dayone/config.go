package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration dayone runs with after applying config.yaml,
DAYONE_* environment variables and defaults.

Keys in config.yaml:
  entries_dir   directory entries are saved to (default ./entries)
  time_zone     IANA zone name (default $TZ, then UTC)
  debug         print a notice after each step
  line_ending   lf or crlf (default: platform)`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

// runConfig prints the effective configuration.
func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}
	cfg := settings.cfg

	if printer.IsJSON() {
		return printer.WriteJSON(cfg)
	}

	file := cfg.File
	if file == "" {
		file = "(none)"
	}
	entriesDir := cfg.EntriesDir
	if entriesDir == "" {
		entriesDir = "./entries"
	}
	lineEnding := cfg.LineEnding
	if lineEnding == "" {
		lineEnding = "platform"
	}

	printer.Section("Config")
	printer.KeyValue("Config dir", cfg.Dir)
	printer.KeyValue("Config file", file)
	printer.KeyValue("Entries dir", entriesDir)
	printer.KeyValue("Time zone", cfg.TimeZone)
	printer.KeyValue("Debug", strconv.FormatBool(cfg.Debug))
	printer.KeyValue("Line ending", lineEnding)
	return nil
}
