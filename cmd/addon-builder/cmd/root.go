package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/addon-builder/internal/logger"
	"github.com/oshokin/addon-builder/internal/service/builder"
	"github.com/oshokin/addon-builder/internal/version"
)

// flags holds the command line options of the root command.
type flags struct {
	workDir    string
	configPath string
	outputDir  string
	logLevel   string
	overwrite  bool
}

// newRootCmd builds the addon-builder command tree.
func newRootCmd() *cobra.Command {
	opts := new(flags)

	rootCmd := &cobra.Command{
		Use:           "addon-builder",
		Short:         "Package a service task addon into its XML definition",
		Long:          "Reads src/addon.json, concatenates the script sources, embeds src/icon.png when present and writes build/<name>.xml.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := opts.resolveWorkDir()
			if err != nil {
				return err
			}

			_, err = builder.Run(cmd.Context(), &builder.Options{
				WorkDir:    workDir,
				ConfigPath: opts.configPath,
				OutputDir:  opts.outputDir,
				LogLevel:   opts.logLevel,
			})

			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.workDir, "workdir", "w", "", "addon project directory (defaults to the current directory)")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to the builder settings file (defaults to addon-builder.yaml in the workdir)")
	rootCmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory, overrides the settings file")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default builder settings file into the workdir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := opts.resolveWorkDir()
			if err != nil {
				return err
			}

			_, err = builder.InitSettings(cmd.Context(), workDir, opts.overwrite)

			return err
		},
	}

	initCmd.Flags().BoolVarP(&opts.overwrite, "force", "f", false, "overwrite an existing settings file")

	rootCmd.AddCommand(initCmd)
	version.AttachCobraVersionCommand(rootCmd)

	return rootCmd
}

// resolveWorkDir returns the --workdir flag or the process working directory.
func (f *flags) resolveWorkDir() (string, error) {
	if f.workDir != "" {
		return f.workDir, nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("detect working directory: %w", err)
	}

	return workDir, nil
}

// Execute runs the addon-builder CLI and exits with non-zero status on error.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error(ctx, err)
		stop()
		os.Exit(1)
	}
}
