package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"audiomod/internal/services"
)

// Filename is the project descriptor name.
const Filename = "project.toml"

// Mode describes how the module operates relative to a surrounding project.
type Mode string

const (
	// ModeIndependent means the module runs standalone with its own descriptor.
	ModeIndependent Mode = "independent"
	// ModeModule means the module belongs to a larger project whose descriptor
	// was found in a conventional location.
	ModeModule Mode = "module"
)

// CandidatePaths returns the conventional descriptor locations in search
// order: the module root itself, then one level up.
func CandidatePaths(moduleRoot string) []string {
	root := filepath.Clean(moduleRoot)
	candidates := []string{filepath.Join(root, Filename)}
	parent := filepath.Dir(root)
	if parent != root {
		candidates = append(candidates, filepath.Join(parent, Filename))
	}
	return candidates
}

// Locate probes the candidate locations for an existing descriptor. Exactly
// one hit resolves to that path with ModeModule; more than one is ambiguous
// and rejected; none returns an empty path with no error so the caller can
// decide to create one.
func Locate(moduleRoot string) (string, error) {
	var found []string
	for _, candidate := range CandidatePaths(moduleRoot) {
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("probe descriptor %s: %w", candidate, err)
		}
		if info.IsDir() {
			continue
		}
		found = append(found, candidate)
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		abs, err := filepath.Abs(found[0])
		if err != nil {
			return "", fmt.Errorf("resolve descriptor path: %w", err)
		}
		return abs, nil
	default:
		return "", fmt.Errorf("%w: found %s", services.ErrDescriptorAmbiguous, strings.Join(found, " and "))
	}
}

// Create writes a minimal descriptor into the module root and returns its
// absolute path. The content beyond the project name is owned by external
// tooling.
func Create(moduleRoot, moduleName string) (string, error) {
	path := filepath.Join(filepath.Clean(moduleRoot), Filename)
	stub := map[string]map[string]string{
		"Project": {"name": moduleName},
	}
	data, err := toml.Marshal(stub)
	if err != nil {
		return "", fmt.Errorf("encode descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write descriptor: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve descriptor path: %w", err)
	}
	return abs, nil
}
