// Package cmd implements the CLI commands for editmark using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/editmark/internal/config"
	"github.com/gaurav-prasanna/editmark/internal/logger"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	quiet      bool
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "editmark",
		Short: "editmark — export rich-text editor content as sanitized Markdown or HTML",
		Long: `editmark serializes the content of a rich-text editing surface into Markdown,
validates link and image URLs, and exports sanitized Markdown, HTML, JSON or PDF.

Usage:
  editmark convert <file|-> [flags]
  editmark check-url <url> [--width 200px]
  editmark escape <text>
  editmark config init [--force]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log_level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress log output")

	rootCmd.AddCommand(
		newConvertCmd(opts),
		newCheckURLCmd(opts),
		newEscapeCmd(),
		newConfigCmd(opts),
	)
	return rootCmd
}

// load reads the config file and builds the stderr logger.
func (o *globalOptions) load(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	log := logger.NewWithLevel(cmd.ErrOrStderr(), level)
	if o.quiet {
		log = logger.Discard()
	}
	log.ConfigLoaded(o.configPath, cfg.Engine, cfg.Format)
	return cfg, log, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
