package main

import (
	"log/slog"
	"path/filepath"

	"audiomod/internal/config"
	"audiomod/internal/logging"
)

// commandContext carries the persistent flag values and lazily built
// collaborators shared by every subcommand.
type commandContext struct {
	rootFlag      *string
	logLevelFlag  *string
	logFormatFlag *string

	cachedLogger *slog.Logger
}

func newCommandContext(rootFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		rootFlag:      rootFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// moduleRoot resolves the configured module root to an absolute path.
func (c *commandContext) moduleRoot() (string, error) {
	root := "."
	if c.rootFlag != nil && *c.rootFlag != "" {
		root = *c.rootFlag
	}
	return filepath.Abs(root)
}

func (c *commandContext) logger() (*slog.Logger, error) {
	if c.cachedLogger != nil {
		return c.cachedLogger, nil
	}
	logger, err := logging.New(logging.Options{
		Level:  stringValue(c.logLevelFlag),
		Format: stringValue(c.logFormatFlag),
	})
	if err != nil {
		return nil, err
	}
	c.cachedLogger = logger
	return logger, nil
}

// loadConfig reads the module configuration from the module root.
func (c *commandContext) loadConfig() (*config.Config, string, error) {
	root, err := c.moduleRoot()
	if err != nil {
		return nil, "", err
	}
	path := config.Path(root)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
