package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/editmark/internal/config"
)

func newConfigCmd(global *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the editmark config file",
	}
	configCmd.AddCommand(newConfigInitCmd(global))
	return configCmd
}

func newConfigInitCmd(global *globalOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `init writes the default configuration to the --config path
(editmark.yaml unless given). An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓ Wrote "+path))
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return initCmd
}
