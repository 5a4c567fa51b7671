package services

import (
	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
)

type DayClass string

const (
	DayClassNone            DayClass = "none"
	DayClassLoggedPeriod    DayClass = "logged_period"
	DayClassPredictedPeriod DayClass = "predicted_period"
	DayClassOvulation       DayClass = "ovulation"
)

// InLoggedPeriod treats an entry without an end date as a single day.
func InLoggedPeriod(day caldate.Date, entries []models.PeriodEntry) bool {
	for _, entry := range entries {
		if day.Between(entry.StartDate, entry.LastDay()) {
			return true
		}
	}
	return false
}

// InPredictedPeriod uses a window of AveragePeriodLength days on both sides
// of the predicted start.
func InPredictedPeriod(day caldate.Date, data models.CycleData) bool {
	if !data.HasPrediction() {
		return false
	}
	return caldate.AbsDaysBetween(day, data.NextPredictedPeriod) <= data.AveragePeriodLength
}

func IsOvulationDay(day caldate.Date, data models.CycleData) bool {
	if data.OvulationDate.IsZero() {
		return false
	}
	return day.Equal(data.OvulationDate)
}

// ClassifyDay picks one class: a logged period outranks a prediction,
// which outranks ovulation.
func ClassifyDay(day caldate.Date, entries []models.PeriodEntry, data models.CycleData) DayClass {
	switch {
	case InLoggedPeriod(day, entries):
		return DayClassLoggedPeriod
	case InPredictedPeriod(day, data):
		return DayClassPredictedPeriod
	case IsOvulationDay(day, data):
		return DayClassOvulation
	default:
		return DayClassNone
	}
}
