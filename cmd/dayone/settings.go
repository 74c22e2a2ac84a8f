package main

import (
	"os"
	"time"

	"github.com/gorewood/dayone/internal/config"
	"github.com/gorewood/dayone/internal/output"
	"github.com/gorewood/dayone/internal/template"
)

// appSettings is the configuration shared by every command.
type appSettings struct {
	cfg       *config.Config
	zone      *time.Location
	workDir   string
	templates *template.Resolver
}

// loadSettings reads the config file and environment and resolves the
// working directory. Failures are user errors: the config is wrong.
func loadSettings() (*appSettings, error) {
	configDir := config.Dir()
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	zone, err := cfg.Location()
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("resolving working directory", err)
	}

	return &appSettings{
		cfg:       cfg,
		zone:      zone,
		workDir:   workDir,
		templates: template.NewResolver(workDir, configDir),
	}, nil
}
