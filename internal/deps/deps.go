// Package deps resolves and reports the external executables the pipeline
// shells out to.
package deps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"audiomod/internal/services"
)

// ResolveConverter resolves the configured converter reference to an
// executable path. Resolution order: an explicit path from configuration,
// then the system search path, then an executable colocated with the module
// root. Relative explicit paths are resolved against the module root.
func ResolveConverter(ref, moduleRoot string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: converter not configured", services.ErrToolNotFound)
	}

	if strings.ContainsRune(ref, os.PathSeparator) || strings.ContainsRune(ref, '/') {
		explicit := filepath.FromSlash(ref)
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(moduleRoot, explicit)
		}
		if isExecutableFile(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: configured path %s does not exist", services.ErrToolNotFound, explicit)
	}

	if path, err := exec.LookPath(ref); err == nil {
		return path, nil
	}

	colocated := filepath.Join(moduleRoot, ref)
	if isExecutableFile(colocated) {
		return colocated, nil
	}

	return "", fmt.Errorf("%w: %q not on PATH and not colocated with the module root", services.ErrToolNotFound, ref)
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return true
}

// Requirement defines an external dependency the pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements against the module root
// using the converter resolution rules.
func CheckBinaries(moduleRoot string, requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := ResolveConverter(cmd, moduleRoot)
		if err != nil {
			if errors.Is(err, services.ErrToolNotFound) || errors.Is(err, fs.ErrNotExist) {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Detail = err.Error()
			}
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Detail = resolved
		results = append(results, status)
	}
	return results
}
