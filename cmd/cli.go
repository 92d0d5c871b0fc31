package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "wreaths/internal/adapters/in/http"
	"wreaths/internal/adapters/out/postgres"
	"wreaths/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long in-flight requests and jobs get to finish.
const ShutdownTimeout = 10 * time.Second

var envFile string

// NewRootCommand returns the wreaths CLI with its serve and migrate subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "wreaths",
		Short:         "Order workflow and bespoke pricing service for Forever Faux Wreaths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			version, err := migrations.Up(cfg.DSN())
			if err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}
			logger.Info("database schema is up to date", zap.Uint("version", version))
			return nil
		},
	}
}

func setup() (Config, *zap.Logger, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return Config{}, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	db, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	app, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	manager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	manager.StartAll()
	defer manager.StopAll()

	e := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers(), logger), logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", cfg.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
