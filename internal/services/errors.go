package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigMissing       = errors.New("config missing")
	ErrConfigMalformed     = errors.New("config malformed")
	ErrConfigKeyMissing    = errors.New("config key missing")
	ErrDescriptorAmbiguous = errors.New("project descriptor ambiguous")
	ErrDestinationConflict = errors.New("destination conflict")
	ErrToolNotFound        = errors.New("tool not found")
	ErrConversionFailed    = errors.New("conversion failed")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = errors.New("failure")
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error must abort the current pipeline run.
// Per-file conversion failures are the only recoverable kind.
func Fatal(err error) bool {
	return err != nil && !errors.Is(err, ErrConversionFailed)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
