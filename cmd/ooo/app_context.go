package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ooo/internal/config"
	"github.com/alexisbeaulieu97/ooo/internal/logger"
)

// appContext bundles the services every command needs.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Fix the file or pass --config with a valid path.")
	}

	level := cfg.Settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"config": path}).Debug("configuration loaded")
	return &appContext{cfg: cfg, log: log}, nil
}
