package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
	"github.com/terraincognita07/cradle/internal/services"
)

var errEntriesFileRequired = errors.New("--file is required")

type predictOptions struct {
	file  string
	today string
}

type predictionReport struct {
	models.CycleData
	EntryCount          int          `json:"entry_count"`
	Today               caldate.Date `json:"today"`
	DaysUntilNextPeriod int          `json:"days_until_next_period"`
}

func newPredictCommand(root *rootOptions) *cobra.Command {
	options := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print cycle predictions for a YAML or JSON entries file",
		Long: `Reads a list of period entries (start_date, optional end_date, flow,
symptoms, notes) and prints the derived cycle statistics as JSON.
No database is touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, root, options)
		},
	}

	cmd.Flags().StringVarP(&options.file, "file", "f", "", "Entries file (YAML or JSON list)")
	cmd.Flags().StringVar(&options.today, "today", "", "Reference date YYYY-MM-DD (default: today in --tz)")
	return cmd
}

func runPredict(cmd *cobra.Command, root *rootOptions, options *predictOptions) error {
	if options.file == "" {
		return errEntriesFileRequired
	}

	today, err := resolveToday(cmd, root, options.today)
	if err != nil {
		return err
	}

	inputs, err := services.LoadPeriodEntryInputsFile(options.file)
	if err != nil {
		return err
	}
	entries := make([]models.PeriodEntry, 0, len(inputs))
	for index, input := range inputs {
		entry, err := services.NormalizePeriodEntryInput(input)
		if err != nil {
			return fmt.Errorf("entry %d: %w", index+1, err)
		}
		entries = append(entries, entry)
	}

	data := services.ComputeCycleData(entries)
	report := predictionReport{
		CycleData:           data,
		EntryCount:          len(entries),
		Today:               today,
		DaysUntilNextPeriod: services.DaysUntilNextPeriod(data, today),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// resolveToday prefers --today, then today in the configured time zone.
func resolveToday(cmd *cobra.Command, root *rootOptions, raw string) (caldate.Date, error) {
	if raw != "" {
		today, err := caldate.Parse(raw)
		if err != nil {
			return caldate.Date{}, fmt.Errorf("invalid --today: %w", err)
		}
		return today, nil
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return caldate.Date{}, err
	}
	location, err := cfg.Location()
	if err != nil {
		return caldate.Date{}, err
	}
	return caldate.Today(location), nil
}
