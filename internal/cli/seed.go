package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cradle/internal/db"
	"github.com/terraincognita07/cradle/internal/services"
)

var (
	errSeedNeedsDatabase = errors.New("seed requires a persistent db_path")
	errSeedNotEmpty      = errors.New("database already has entries; pass --force to replace them")
)

type seedOptions struct {
	file  string
	force bool
}

func newSeedCommand(root *rootOptions) *cobra.Command {
	options := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample history (or --file) into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, root, options)
		},
	}

	cmd.Flags().StringVarP(&options.file, "file", "f", "", "Entries file to load instead of the sample history")
	cmd.Flags().BoolVar(&options.force, "force", false, "Delete existing entries first")
	return cmd
}

func runSeed(cmd *cobra.Command, root *rootOptions, options *seedOptions) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if cfg.DBPath == "" {
		return errSeedNeedsDatabase
	}

	logger, closer, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	inputs, err := seedInputs(options.file)
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

	repo := db.NewRepositories(database).Periods
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count period entries: %w", err)
	}

	service := services.NewPeriodService(repo)
	if count > 0 {
		if !options.force {
			return errSeedNotEmpty
		}
		if err := service.ClearEntries(); err != nil {
			return err
		}
		logger.Info().Int64("entries", count).Msg("existing entries removed")
	}

	created, err := service.ImportEntries(inputs)
	if err != nil {
		return err
	}
	logger.Info().Int("entries", len(created)).Str("db_path", cfg.DBPath).Msg("seed complete")
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d period entries into %s\n", len(created), cfg.DBPath)
	return nil
}

func seedInputs(file string) ([]services.PeriodEntryInput, error) {
	if file == "" {
		return services.SamplePeriodEntryInputs()
	}
	return services.LoadPeriodEntryInputsFile(file)
}
