package services

import (
	"math"
	"sort"

	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
)

// ComputeCycleData derives averages and predictions from a snapshot of
// logged periods. The input is never mutated and its order does not matter.
func ComputeCycleData(entries []models.PeriodEntry) models.CycleData {
	if len(entries) < 2 {
		data := models.CycleData{
			AverageCycleLength:  models.DefaultCycleLength,
			AveragePeriodLength: models.DefaultPeriodLength,
		}
		if len(entries) == 1 {
			data.LastPeriodDate = entries[0].StartDate
		}
		return data
	}

	sorted := sortEntriesNewestFirst(entries)

	totalCycleDays := 0
	for i := 0; i < len(sorted)-1; i++ {
		totalCycleDays += caldate.AbsDaysBetween(sorted[i].StartDate, sorted[i+1].StartDate)
	}
	averageCycleLength := roundHalfUp(float64(totalCycleDays) / float64(len(sorted)-1))

	averagePeriodLength := models.DefaultPeriodLength
	totalPeriodDays := 0
	periodsWithEndDate := 0
	for _, entry := range sorted {
		if !entry.HasEndDate() {
			continue
		}
		totalPeriodDays += entry.DurationDays()
		periodsWithEndDate++
	}
	if periodsWithEndDate > 0 {
		averagePeriodLength = roundHalfUp(float64(totalPeriodDays) / float64(periodsWithEndDate))
	}

	lastPeriodDate := sorted[0].StartDate
	return models.CycleData{
		AverageCycleLength:  averageCycleLength,
		AveragePeriodLength: averagePeriodLength,
		LastPeriodDate:      lastPeriodDate,
		NextPredictedPeriod: lastPeriodDate.AddDays(averageCycleLength),
		// Not clamped: a cycle shorter than the luteal phase puts this
		// before lastPeriodDate.
		OvulationDate: lastPeriodDate.AddDays(averageCycleLength - models.LutealPhaseDays),
	}
}

// DaysUntilNextPeriod is never negative; 0 without a prediction.
func DaysUntilNextPeriod(data models.CycleData, today caldate.Date) int {
	if !data.HasPrediction() {
		return 0
	}
	days := today.DaysUntil(data.NextPredictedPeriod)
	if days < 0 {
		return 0
	}
	return days
}

func sortEntriesNewestFirst(entries []models.PeriodEntry) []models.PeriodEntry {
	sorted := make([]models.PeriodEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order := sorted[i].StartDate.Compare(sorted[j].StartDate); order != 0 {
			return order > 0
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
