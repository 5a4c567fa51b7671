package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cradle/internal/api"
	"github.com/terraincognita07/cradle/internal/config"
	"github.com/terraincognita07/cradle/internal/db"
	"github.com/terraincognita07/cradle/internal/services"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(options *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, options)
			if err != nil {
				return err
			}
			logger, closer, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			return runServer(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().Int("port", 8080, "HTTP listen port")
	cmd.Flags().Bool("seed-sample", false, "Insert the sample history when the database is empty")
	return cmd
}

func runServer(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer sqlDB.Close()

	if cfg.SeedSample {
		if err := seedIfEmpty(db.NewPeriodRepository(database), logger); err != nil {
			return err
		}
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, location, logger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	if !handler.AuthEnabled() {
		logger.Warn().Msg("secret_key is not set; the API is open to anyone who can reach it")
	}
	app := api.NewApp(handler)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().
			Str("addr", cfg.ListenAddress()).
			Str("db_path", cfg.DBPath).
			Str("tz", location.String()).
			Msg("cradle listening")
		return app.Listen(cfg.ListenAddress())
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logger.Info().Msg("cradle stopped")
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func seedIfEmpty(repo *db.PeriodRepository, logger zerolog.Logger) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count period entries: %w", err)
	}
	if count > 0 {
		logger.Info().Int64("entries", count).Msg("database not empty, skipping sample history")
		return nil
	}

	inputs, err := services.SamplePeriodEntryInputs()
	if err != nil {
		return err
	}
	created, err := services.NewPeriodService(repo).ImportEntries(inputs)
	if err != nil {
		return fmt.Errorf("seed sample history: %w", err)
	}
	logger.Info().Int("entries", len(created)).Msg("sample history inserted")
	return nil
}
