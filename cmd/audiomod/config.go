package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiomod/internal/config"
	"audiomod/internal/project"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the module configuration",
	}
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))
	return configCmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the configuration and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration valid: %s\n", path)
			return nil
		},
	}
}

// newConfigInitCommand writes the default configuration without touching the
// project descriptor. The mode is derived from whatever descriptor already
// exists; use `init` to create one.
func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ctx.moduleRoot()
			if err != nil {
				return err
			}
			descriptor, err := project.Locate(root)
			if err != nil {
				return err
			}
			mode := project.ModeIndependent
			if descriptor != "" {
				mode = project.ModeModule
			}

			path := config.Path(root)
			created, err := config.CreateDefault(path, string(mode), descriptor)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "configuration created: %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "configuration already present: %s\n", path)
			}
			return nil
		},
	}
}
