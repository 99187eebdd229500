package config

import (
	"fmt"
	"strings"

	"audiomod/internal/services"
)

// Validate checks that every required key carries a value. Lookups are
// case-sensitive; an empty required key is reported as ConfigKeyMissing with
// its section-qualified name.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"Config.module_name", c.Module.ModuleName},
		{"Config.mode", c.Module.Mode},
		{"Directories.source_dir", c.Directories.SourceDir},
		{"Directories.target_dir", c.Directories.TargetDir},
		{"Tools.converter", c.Tools.Converter},
		{"Extensions.source_ext", c.Extensions.SourceExt},
		{"Extensions.target_ext", c.Extensions.TargetExt},
	}
	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			return fmt.Errorf("%w: %s", services.ErrConfigKeyMissing, entry.key)
		}
	}
	switch c.Module.Mode {
	case "independent", "module":
	default:
		return fmt.Errorf("%w: Config.mode must be %q or %q, got %q",
			services.ErrConfigMalformed, "independent", "module", c.Module.Mode)
	}
	return nil
}
