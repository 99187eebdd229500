package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"audiomod/internal/converter"
	"audiomod/internal/deps"
	"audiomod/internal/initializer"
	"audiomod/internal/organizer"
	"audiomod/internal/pipeline"
	"audiomod/internal/services"
	"audiomod/internal/services/vgmstream"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: initialize, organize, convert",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(ctx, cmd)
		},
	}
}

// runPipeline wires the three stages together and executes them under the
// module-root run lock. Each stage prints its own summary as it completes so
// partial progress is visible even when a later stage fails.
func runPipeline(ctx *commandContext, cmd *cobra.Command) error {
	logger, err := ctx.logger()
	if err != nil {
		return err
	}
	root, err := ctx.moduleRoot()
	if err != nil {
		return err
	}
	out := newSummaryWriter(cmd.OutOrStdout())

	runner := pipeline.NewRunner(filepath.Join(root, pipeline.LockFilename), logger,
		pipeline.StageFunc{StageName: pipeline.StageInitialize, Fn: func(stageCtx context.Context) error {
			result, err := initializer.New(root, logger).Initialize(stageCtx)
			if err != nil {
				return err
			}
			out.initialized(result)
			return nil
		}},
		pipeline.StageFunc{StageName: pipeline.StageOrganize, Fn: func(stageCtx context.Context) error {
			return runOrganizeStage(ctx, stageCtx, root, logger, out)
		}},
		pipeline.StageFunc{StageName: pipeline.StageConvert, Fn: func(stageCtx context.Context) error {
			return runConvertStage(ctx, stageCtx, root, logger, out)
		}},
	)
	return runner.Run(cmd.Context())
}

func runOrganizeStage(ctx *commandContext, stageCtx context.Context, root string, logger *slog.Logger, out *summaryWriter) error {
	cfg, _, err := ctx.loadConfig()
	if err != nil {
		return err
	}
	result, err := organizer.New(cfg.SourcePath(root), cfg.BlacklistSet(), cfg.GlobalSet(), logger).Organize(stageCtx)
	if err != nil {
		return err
	}
	out.organized(result)
	return nil
}

// runConvertStage completes the whole batch before reporting; per-file
// failures do not abort remaining files but do fail the stage afterwards so
// the process exits non-zero.
func runConvertStage(ctx *commandContext, stageCtx context.Context, root string, logger *slog.Logger, out *summaryWriter) error {
	cfg, _, err := ctx.loadConfig()
	if err != nil {
		return err
	}
	binary, err := deps.ResolveConverter(cfg.Tools.Converter, root)
	if err != nil {
		return err
	}

	conv := converter.New(
		cfg.SourcePath(root),
		cfg.TargetPath(root),
		cfg.Extensions.SourceExt,
		cfg.Extensions.TargetExt,
		vgmstream.NewCLI(binary),
		logger,
	)
	report, err := conv.ConvertAll(stageCtx)
	if err != nil {
		return err
	}
	out.converted(report)
	if failed := len(report.Failed); failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", services.ErrConversionFailed, failed, report.Found)
	}
	return nil
}
