// Package cli implements the cradle command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cradle/internal/config"
	"github.com/terraincognita07/cradle/internal/logging"
)

type rootOptions struct {
	configFile string
}

// Execute runs the root command until it returns or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cradle",
		Short: "Menstrual cycle tracker and predictor",
		Long: `Cradle records period start and end dates and predicts the next
period and ovulation day from the logged history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&options.configFile, "config", "c", "", "Path to a YAML, JSON or TOML config file")
	flags.String("db-path", "", "SQLite database path (empty keeps data in memory)")
	flags.String("tz", "UTC", "Time zone used to decide what \"today\" is")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "json", "Log format (json or console)")

	cmd.AddCommand(
		newServeCommand(options),
		newPredictCommand(options),
		newSeedCommand(options),
		newTokenCommand(options),
		newSecretCommand(),
	)
	return cmd
}

func loadConfig(cmd *cobra.Command, options *rootOptions) (config.Config, error) {
	return config.Load(options.configFile, cmd.Flags())
}

func newLogger(cfg config.Config, out io.Writer) (zerolog.Logger, io.Closer, error) {
	if out == nil {
		out = os.Stderr
	}
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, out)
}
