package main

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Astemirdum/library-desk/desk/app"
	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL   string
		logLevel string
		logFile  string
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "desk",
		Short: "Terminal desk for the library lending service",
		Long: `desk manages books, clients and loans of the library service from the terminal.

Settings come from the environment (and a .env file when present);
flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return errors.Wrap(err, "load envs from .env")
			}
			opts := []config.Option{
				config.WithBaseURL(apiURL),
				config.WithTimeout(timeout),
			}
			if cmd.Flags().Changed("log-level") {
				lvl, err := zapcore.ParseLevel(logLevel)
				if err != nil {
					return errors.Wrap(err, "log-level")
				}
				opts = append(opts, config.WithLogLevel(lvl))
			}
			if cmd.Flags().Changed("log-file") {
				opts = append(opts, config.WithLogSink(logFile))
			}
			return app.Run(config.NewConfig(opts...))
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Library API base URL (overrides LIBRARY_API_URL)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFile, "log-file", "desk.log", "Log file; empty logs to stderr")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides LIBRARY_API_TIMEOUT)")
	return cmd
}
