package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackvity/convargs/internal/cli"
	"github.com/stackvity/convargs/internal/cli/config"
)

// exitCode carries the outcome of the root run out of cobra's Execute.
var exitCode = cli.ExitOK

// rootCmd is the base command. Flag parsing is disabled so the raw argument
// vector reaches the convargs classifier untouched; the library's own
// registry decides which flags exist, including -help and -version.
var rootCmd = &cobra.Command{
	Use:   "fileconv [options] <source_file> [target_file]",
	Short: "Resolve source and target paths for a file conversion run.",
	Long: `fileconv demonstrates the convargs argument parser. It validates a
source file (or directory) and resolves the target path under the configured
extension policy, then logs the conversion plan a real tool would execute.

Configuration is read from ` + config.DefaultConfigName + `.yaml in the working
directory or $HOME/.config/` + config.DefaultConfigName + `, overridable with
` + config.EnvPrefix + `_ environment variables.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(false)
		cfg, err := config.Load(os.Getenv(config.EnvPrefix+"_CONFIG"), logger)
		if err != nil {
			logger.Error("configuration loading failed", slog.Any("error", err))
			exitCode = cli.ExitConfig
			return nil
		}
		if cfg.Verbose {
			logger = newLogger(true)
		}
		parser, err := cfg.BuildParser(logger)
		if err != nil {
			logger.Error("parser construction failed", slog.Any("error", err))
			exitCode = cli.ExitConfig
			return nil
		}
		handler := &cli.LogHandler{Logger: logger, Out: cmd.OutOrStdout()}
		exitCode = cli.Run(parser, args, handler, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

// configCmd groups configuration helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

// configInitCmd writes the default configuration to stdout as a starting
// point for a tool-specific config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Print the default configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Default().YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return cli.ExitUsage
	}
	return exitCode
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr text logger used across the binary.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
