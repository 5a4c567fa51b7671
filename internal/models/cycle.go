package models

import "github.com/terraincognita07/cradle/internal/caldate"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	LutealPhaseDays     = 14
)

// CycleData is derived from the full entry history on every request.
type CycleData struct {
	AverageCycleLength  int          `json:"average_cycle_length"`
	AveragePeriodLength int          `json:"average_period_length"`
	LastPeriodDate      caldate.Date `json:"last_period_date"`
	NextPredictedPeriod caldate.Date `json:"next_predicted_period"`
	OvulationDate       caldate.Date `json:"ovulation_date"`
}

func (data CycleData) HasPrediction() bool {
	return !data.NextPredictedPeriod.IsZero()
}
