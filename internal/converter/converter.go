package converter

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"audiomod/internal/logging"
	"audiomod/internal/services"
	"audiomod/internal/services/vgmstream"
)

// Failure records one file that could not be converted.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes one conversion pass.
type Report struct {
	Found     int
	Converted int
	Skipped   int
	Failed    []Failure
}

// Converter drives the per-file conversion batch.
type Converter struct {
	sourceDir string
	targetDir string
	sourceExt string
	targetExt string
	client    vgmstream.Client
	logger    *slog.Logger
}

// New constructs a converter. The client must already be bound to a resolved
// executable; resolution failures belong before construction so no file is
// touched when the tool is absent.
func New(sourceDir, targetDir, sourceExt, targetExt string, client vgmstream.Client, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		sourceDir: sourceDir,
		targetDir: targetDir,
		sourceExt: sourceExt,
		targetExt: targetExt,
		client:    client,
		logger:    logger.With(logging.String(logging.FieldComponent, "converter")),
	}
}

// ConvertAll enumerates matching source files and converts each one
// synchronously. Per-file failures are collected in the report; only
// enumeration problems and context cancellation abort the pass.
func (c *Converter) ConvertAll(ctx context.Context) (Report, error) {
	var report Report
	logger := logging.WithContext(ctx, c.logger)

	sources, err := c.findSources()
	if err != nil {
		return report, services.Wrap(nil, "convert", "enumerate source files", c.sourceDir, err)
	}
	report.Found = len(sources)
	if len(sources) == 0 {
		logger.Info("no matching files in source tree",
			logging.String("source_dir", c.sourceDir),
			logging.String("source_ext", c.sourceExt),
		)
		return report, nil
	}
	logger.Info("starting conversion batch",
		logging.Int("files", len(sources)),
		logging.String("source_ext", c.sourceExt),
		logging.String("target_ext", c.targetExt),
	)

	for _, rel := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		source := filepath.Join(c.sourceDir, rel)
		target := filepath.Join(c.targetDir, swapExt(rel, c.targetExt))

		if _, err := os.Stat(target); err == nil {
			logger.Debug("already converted", logging.String("path", rel))
			report.Skipped++
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			report.Failed = append(report.Failed, Failure{
				Path: source,
				Err:  services.Wrap(services.ErrConversionFailed, "convert", "create target directory", rel, err),
			})
			continue
		}

		logger.Info("converting", logging.String("path", rel))
		if err := c.client.Convert(ctx, source, target); err != nil {
			c.discardPartial(target, logger)
			report.Failed = append(report.Failed, Failure{
				Path: source,
				Err:  services.Wrap(services.ErrConversionFailed, "convert", "run tool", rel, err),
			})
			logger.Warn("conversion failed", logging.String("path", rel), logging.Error(err))
			continue
		}
		report.Converted++
	}

	logger.Info("conversion batch complete",
		logging.Int("found", report.Found),
		logging.Int("converted", report.Converted),
		logging.Int("skipped", report.Skipped),
		logging.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func (c *Converter) findSources() ([]string, error) {
	var sources []string
	err := filepath.WalkDir(c.sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), c.sourceExt) {
			return nil
		}
		rel, err := filepath.Rel(c.sourceDir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// discardPartial removes whatever the failed tool invocation left behind so a
// re-run retries the file instead of skipping it.
func (c *Converter) discardPartial(target string, logger *slog.Logger) {
	if _, err := os.Stat(target); err != nil {
		return
	}
	if err := os.Remove(target); err != nil {
		logger.Warn("could not remove incomplete output", logging.String("path", target), logging.Error(err))
	}
}

func swapExt(path, targetExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + targetExt
}
