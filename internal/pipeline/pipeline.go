package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"

	"audiomod/internal/logging"
	"audiomod/internal/services"
)

// LockFilename is the lock file kept in the module root for the duration of a run.
const LockFilename = ".audiomod.lock"

// Canonical stage names, in execution order.
const (
	StageInitialize = "initialize"
	StageOrganize   = "organize"
	StageConvert    = "convert"
)

// Stage is one sequential phase of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

// StageFunc adapts a function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context) error
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Run(ctx context.Context) error { return s.Fn(ctx) }

// StageError wraps a stage failure with the stage identity.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

var titleCaser = cases.Title(xlanguage.English)

// DisplayLabel renders a stage name for user-facing output.
func DisplayLabel(name string) string {
	return titleCaser.String(name)
}

// Runner executes stages in order, fail-fast.
type Runner struct {
	stages   []Stage
	logger   *slog.Logger
	lockPath string
}

// NewRunner constructs a runner. lockPath may be empty to skip locking, which
// tests use when exercising stage sequencing alone.
func NewRunner(lockPath string, logger *slog.Logger, stages ...Stage) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		stages:   stages,
		logger:   logger.With(logging.String(logging.FieldComponent, "pipeline")),
		lockPath: lockPath,
	}
}

// Run executes every stage sequentially. The first failure aborts the
// remaining stages and is returned as a StageError.
func (r *Runner) Run(ctx context.Context) error {
	if r.lockPath != "" {
		lock := flock.New(r.lockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire run lock %s: %w", r.lockPath, err)
		}
		if !locked {
			return fmt.Errorf("another run holds the lock at %s", r.lockPath)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("pipeline started", logging.Int("stages", len(r.stages)))

	for _, stage := range r.stages {
		stageCtx := services.WithStage(ctx, stage.Name())
		stageLogger := logging.WithContext(stageCtx, r.logger)
		stageLogger.Info("stage started")

		if err := stage.Run(stageCtx); err != nil {
			stageLogger.Error("stage failed", logging.Error(err))
			return &StageError{Stage: stage.Name(), Err: err}
		}
		stageLogger.Info("stage completed")
	}

	logger.Info("pipeline completed")
	return nil
}
