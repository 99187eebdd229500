package vgmstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Client defines stream conversion behaviour.
type Client interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// CLI invokes the conversion executable once per file.
type CLI struct {
	binary string
}

// NewCLI constructs a client around the resolved executable path.
func NewCLI(binary string) *CLI {
	return &CLI{binary: binary}
}

// Convert runs `<binary> <input> -o <output>` synchronously. A non-zero exit
// is reported with the tail of the tool's combined output.
func (c *CLI) Convert(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" {
		return errors.New("input path required")
	}
	if outputPath == "" {
		return errors.New("output path required")
	}

	cmd := commandContext(ctx, c.binary, inputPath, "-o", outputPath) //nolint:gosec
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if tail := outputTail(output.String()); tail != "" {
			return fmt.Errorf("convert %s: %w: %s", inputPath, err, tail)
		}
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}
	return nil
}

func outputTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	start := len(lines) - 3
	if start < 0 {
		start = 0
	}
	tail := strings.Join(lines[start:], " | ")
	return strings.TrimSpace(tail)
}

var _ Client = (*CLI)(nil)
