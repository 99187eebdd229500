package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"audiomod/internal/services"
)

// Filename is the configuration document name inside the module root.
const Filename = "audiomod.toml"

// Module identifies this module and how it was initialized.
type Module struct {
	ModuleName  string `toml:"module_name"`
	Mode        string `toml:"mode"`
	ProjectPath string `toml:"project_path"`
}

// Directories holds the source and target tree roots. Relative values are
// resolved against the module root.
type Directories struct {
	SourceDir string `toml:"source_dir"`
	TargetDir string `toml:"target_dir"`
}

// Tools names the external conversion executable, either as a bare command
// resolved through PATH or as an explicit path.
type Tools struct {
	Converter string `toml:"converter"`
}

// Extensions holds the source and target file extensions, leading dot included.
type Extensions struct {
	SourceExt string `toml:"source_ext"`
	TargetExt string `toml:"target_ext"`
}

// Config is the parsed configuration document. LanguageBlacklist and
// GlobalDirs are sets keyed by case-sensitive directory basenames; the values
// are unused and only kept so documents round-trip.
type Config struct {
	Module            Module            `toml:"Config"`
	Directories       Directories       `toml:"Directories"`
	Tools             Tools             `toml:"Tools"`
	Extensions        Extensions        `toml:"Extensions"`
	LanguageBlacklist map[string]string `toml:"LanguageBlacklist"`
	GlobalDirs        map[string]string `toml:"GlobalDirs"`
}

// Path returns the configuration document location for a module root.
func Path(moduleRoot string) string {
	return filepath.Join(moduleRoot, Filename)
}

// Load parses and validates the configuration document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", services.ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", services.ErrConfigMalformed, path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save persists the document, replacing any existing file.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// CreateDefault writes a default document with the given initialization mode
// and project descriptor path. An existing file is never overwritten; the
// second return reports whether a new file was created.
func CreateDefault(path, mode, projectPath string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}

	cfg := Default()
	cfg.Module.Mode = mode
	cfg.Module.ProjectPath = projectPath
	if err := Save(&cfg, path); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Config) normalize() {
	c.Extensions.SourceExt = normalizeExt(c.Extensions.SourceExt)
	c.Extensions.TargetExt = normalizeExt(c.Extensions.TargetExt)
	if c.LanguageBlacklist == nil {
		c.LanguageBlacklist = map[string]string{}
	}
	if c.GlobalDirs == nil {
		c.GlobalDirs = map[string]string{}
	}
}

func normalizeExt(ext string) string {
	if ext == "" || ext[0] == '.' {
		return ext
	}
	return "." + ext
}

// SourcePath resolves the source directory against the module root.
func (c *Config) SourcePath(moduleRoot string) string {
	return resolveDir(moduleRoot, c.Directories.SourceDir)
}

// TargetPath resolves the target directory against the module root.
func (c *Config) TargetPath(moduleRoot string) string {
	return resolveDir(moduleRoot, c.Directories.TargetDir)
}

func resolveDir(root, dir string) string {
	dir = filepath.FromSlash(dir)
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

// BlacklistSet returns the blacklisted directory names as a set.
func (c *Config) BlacklistSet() map[string]struct{} {
	return keySet(c.LanguageBlacklist)
}

// GlobalSet returns the Global-bucket directory names as a set.
func (c *Config) GlobalSet() map[string]struct{} {
	return keySet(c.GlobalDirs)
}

func keySet(m map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for key := range m {
		set[key] = struct{}{}
	}
	return set
}
