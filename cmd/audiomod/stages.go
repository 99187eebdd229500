package main

import (
	"github.com/spf13/cobra"

	"audiomod/internal/initializer"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the project descriptor and default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			root, err := ctx.moduleRoot()
			if err != nil {
				return err
			}
			result, err := initializer.New(root, logger).Initialize(cmd.Context())
			if err != nil {
				return err
			}
			newSummaryWriter(cmd.OutOrStdout()).initialized(result)
			return nil
		},
	}
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "organize",
		Short: "Sort source locale directories into the EN and Global buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			root, err := ctx.moduleRoot()
			if err != nil {
				return err
			}
			out := newSummaryWriter(cmd.OutOrStdout())
			return runOrganizeStage(ctx, cmd.Context(), root, logger, out)
		},
	}
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert source stream files into the target tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			root, err := ctx.moduleRoot()
			if err != nil {
				return err
			}
			out := newSummaryWriter(cmd.OutOrStdout())
			return runConvertStage(ctx, cmd.Context(), root, logger, out)
		},
	}
}
