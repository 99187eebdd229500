package initializer

import (
	"context"
	"log/slog"

	"audiomod/internal/config"
	"audiomod/internal/logging"
	"audiomod/internal/project"
	"audiomod/internal/services"
)

// Result reports what initialization found or created.
type Result struct {
	DescriptorPath    string
	DescriptorCreated bool
	Mode              project.Mode
	ConfigPath        string
	ConfigCreated     bool
}

// Initializer ensures the descriptor and configuration exist for a module root.
type Initializer struct {
	moduleRoot string
	logger     *slog.Logger
}

// New constructs an initializer for the given module root.
func New(moduleRoot string, logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Initializer{
		moduleRoot: moduleRoot,
		logger:     logger.With(logging.String(logging.FieldComponent, "initializer")),
	}
}

// Initialize locates or creates the project descriptor, then ensures the
// configuration document exists with defaults reflecting the resolved mode.
func (i *Initializer) Initialize(ctx context.Context) (Result, error) {
	var result Result
	logger := logging.WithContext(ctx, i.logger)

	descriptor, err := project.Locate(i.moduleRoot)
	if err != nil {
		return result, services.Wrap(nil, "initialize", "locate project descriptor", i.moduleRoot, err)
	}
	if descriptor != "" {
		result.DescriptorPath = descriptor
		result.Mode = project.ModeModule
		logger.Info("found project descriptor", logging.String("path", descriptor))
	} else {
		moduleName := config.Default().Module.ModuleName
		created, err := project.Create(i.moduleRoot, moduleName)
		if err != nil {
			return result, services.Wrap(nil, "initialize", "create project descriptor", i.moduleRoot, err)
		}
		result.DescriptorPath = created
		result.DescriptorCreated = true
		result.Mode = project.ModeIndependent
		logger.Info("created project descriptor", logging.String("path", created))
	}

	result.ConfigPath = config.Path(i.moduleRoot)
	createdConfig, err := config.CreateDefault(result.ConfigPath, string(result.Mode), result.DescriptorPath)
	if err != nil {
		return result, services.Wrap(nil, "initialize", "ensure module config", result.ConfigPath, err)
	}
	result.ConfigCreated = createdConfig
	if createdConfig {
		logger.Info("created module configuration", logging.String("path", result.ConfigPath))
	} else {
		logger.Info("module configuration already present", logging.String("path", result.ConfigPath))
	}

	return result, nil
}
