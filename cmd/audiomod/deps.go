package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"audiomod/internal/config"
	"audiomod/internal/deps"
	"audiomod/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external binaries the pipeline shells out to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ctx.moduleRoot()
			if err != nil {
				return err
			}

			// The converter reference comes from the config when one exists,
			// otherwise from the defaults so the check works pre-init.
			converterRef := config.Default().Tools.Converter
			cfg, _, err := ctx.loadConfig()
			switch {
			case err == nil:
				converterRef = cfg.Tools.Converter
			case errors.Is(err, services.ErrConfigMissing):
			default:
				return err
			}

			statuses := deps.CheckBinaries(root, []deps.Requirement{
				{
					Name:        "converter",
					Command:     converterRef,
					Description: "audio stream conversion tool",
				},
			})
			newSummaryWriter(cmd.OutOrStdout()).dependencies(statuses)

			for _, status := range statuses {
				if !status.Available {
					return fmt.Errorf("%w: %s (%s)", services.ErrToolNotFound, status.Name, status.Detail)
				}
			}
			return nil
		},
	}
}
