package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sportselling/landing/console"
	"github.com/sportselling/landing/internal/config"
	"github.com/sportselling/landing/internal/handlers"
	"github.com/sportselling/landing/internal/logging"
	"github.com/sportselling/landing/internal/metrics"
	"github.com/sportselling/landing/internal/server"
	"github.com/sportselling/landing/shell"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "landing",
		Short:         "Sportselling landing page",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(newServeCommand(&envFile), newRenderCommand(&envFile))
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			boot, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to create bootstrap logger: %w", err)
			}

			cfg, err := config.Load(boot, *envFile)
			_ = boot.Sync()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			log, err := logging.New(cfg.LogLevel, cfg.IsLocal())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			console.SetLogger(log)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides LANDING_ADDR")
	return cmd
}

func newRenderCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the prerendered landing page to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(zap.NewNop(), *envFile)
			if err != nil {
				return err
			}

			pages := handlers.NewPages(zap.NewNop(), metrics.New(), shell.Options{
				Metadata:     shell.Default,
				Assets:       shell.DefaultAssets,
				WelcomeDelay: cfg.WelcomeDelay,
			})
			return pages.WriteLanding(cmd.OutOrStdout())
		},
	}
}
