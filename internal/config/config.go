package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zone names resolve on hosts without a zoneinfo database

	"github.com/spf13/viper"
)

// FileName is the config file looked up inside Dir.
const FileName = "config.yaml"

// DefaultTimeZone is used when neither the config nor $TZ names a zone.
const DefaultTimeZone = "UTC"

// Line ending names accepted by the line_ending key.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Config is the effective dayone configuration.
type Config struct {
	// Dir is the directory the config was loaded from.
	Dir string `json:"config_dir"`
	// File is the config file read, or "" when none exists.
	File string `json:"config_file,omitempty"`
	// EntriesDir is where entries are saved. Empty means ./entries.
	EntriesDir string `json:"entries_dir,omitempty"`
	// TimeZone is the IANA name entry timestamps are recorded in.
	TimeZone string `json:"time_zone"`
	// Debug enables progress notices.
	Debug bool `json:"debug"`
	// LineEnding is lf, crlf or empty for the platform default.
	LineEnding string `json:"line_ending,omitempty"`
}

// Load reads <dir>/config.yaml when present and applies DAYONE_* environment
// overrides (DAYONE_ENTRIES_DIR, DAYONE_TIME_ZONE, DAYONE_DEBUG,
// DAYONE_LINE_ENDING). A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DAYONE")
	v.AutomaticEnv()

	v.SetDefault("entries_dir", "")
	v.SetDefault("time_zone", "")
	v.SetDefault("debug", false)
	v.SetDefault("line_ending", "")

	cfg := &Config{Dir: dir}

	if dir != "" {
		path := filepath.Join(dir, FileName)
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else {
			cfg.File = path
		}
	}

	cfg.EntriesDir = v.GetString("entries_dir")
	cfg.Debug = v.GetBool("debug")

	cfg.LineEnding = strings.ToLower(strings.TrimSpace(v.GetString("line_ending")))
	switch cfg.LineEnding {
	case "", LineEndingLF, LineEndingCRLF:
	default:
		return nil, fmt.Errorf("invalid line_ending %q: want %s or %s", cfg.LineEnding, LineEndingLF, LineEndingCRLF)
	}

	cfg.TimeZone = strings.TrimSpace(v.GetString("time_zone"))
	if cfg.TimeZone == "" {
		cfg.TimeZone = zoneFromTZ()
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LineBreak returns the characters for LineEnding, or "" for the platform
// default.
func (c *Config) LineBreak() string {
	switch c.LineEnding {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// zoneFromTZ returns $TZ when it names a loadable zone, else DefaultTimeZone.
func zoneFromTZ() string {
	tz := strings.TrimPrefix(os.Getenv("TZ"), ":")
	if tz == "" {
		return DefaultTimeZone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return DefaultTimeZone
	}
	return tz
}
