package services

import (
	"testing"

	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
)

func TestClassifyDaySampleHistory(t *testing.T) {
	entries := sampleHistory()
	data := ComputeCycleData(entries)

	cases := map[string]DayClass{
		"2024-03-10": DayClassLoggedPeriod,
		"2024-03-15": DayClassLoggedPeriod,
		"2024-03-16": DayClassNone,
		"2024-03-24": DayClassOvulation,
		"2024-03-31": DayClassNone,
		"2024-04-01": DayClassPredictedPeriod,
		"2024-04-07": DayClassPredictedPeriod,
		"2024-04-13": DayClassPredictedPeriod,
		"2024-04-14": DayClassNone,
		"2024-01-14": DayClassNone,
		"2024-01-15": DayClassLoggedPeriod,
	}
	for raw, expected := range cases {
		if got := ClassifyDay(caldate.MustParse(raw), entries, data); got != expected {
			t.Fatalf("%s: expected %s, got %s", raw, expected, got)
		}
	}
}

func TestClassifyDayLoggedPeriodOutranksPrediction(t *testing.T) {
	data := models.CycleData{
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
		LastPeriodDate:      caldate.MustParse("2024-03-10"),
		NextPredictedPeriod: caldate.MustParse("2024-04-07"),
		OvulationDate:       caldate.MustParse("2024-03-24"),
	}
	entries := []models.PeriodEntry{makeEntry("late", "2024-04-05", "2024-04-08")}

	day := caldate.MustParse("2024-04-06")
	if !InPredictedPeriod(day, data) {
		t.Fatalf("expected %s inside the predicted window", day)
	}
	if got := ClassifyDay(day, entries, data); got != DayClassLoggedPeriod {
		t.Fatalf("expected logged period to win, got %s", got)
	}
}

func TestClassifyDayPredictionOutranksOvulation(t *testing.T) {
	data := models.CycleData{
		AverageCycleLength:  28,
		AveragePeriodLength: 14,
		LastPeriodDate:      caldate.MustParse("2024-03-10"),
		NextPredictedPeriod: caldate.MustParse("2024-04-07"),
		OvulationDate:       caldate.MustParse("2024-03-24"),
	}

	ovulation := caldate.MustParse("2024-03-24")
	if !IsOvulationDay(ovulation, data) {
		t.Fatalf("expected ovulation flag on %s", ovulation)
	}
	if got := ClassifyDay(ovulation, nil, data); got != DayClassPredictedPeriod {
		t.Fatalf("expected predicted period to win over ovulation, got %s", got)
	}
}

func TestClassifyDayOpenEntryCoversOnlyStartDay(t *testing.T) {
	entries := []models.PeriodEntry{makeEntry("open", "2024-02-01", "")}

	if !InLoggedPeriod(caldate.MustParse("2024-02-01"), entries) {
		t.Fatalf("expected the start day of an open entry to be logged")
	}
	if InLoggedPeriod(caldate.MustParse("2024-02-02"), entries) {
		t.Fatalf("expected the day after an open entry start to stay unlogged")
	}
}

func TestClassifyDayWithoutPrediction(t *testing.T) {
	entries := []models.PeriodEntry{makeEntry("only", "2024-02-01", "2024-02-03")}
	data := ComputeCycleData(entries)

	if InPredictedPeriod(caldate.MustParse("2024-02-29"), data) {
		t.Fatalf("expected no predicted window without a prediction")
	}
	if IsOvulationDay(caldate.MustParse("2024-02-15"), data) {
		t.Fatalf("expected no ovulation day without a prediction")
	}
	if got := ClassifyDay(caldate.MustParse("2024-02-02"), entries, data); got != DayClassLoggedPeriod {
		t.Fatalf("expected logged period, got %s", got)
	}
	if got := ClassifyDay(caldate.MustParse("2024-02-10"), entries, data); got != DayClassNone {
		t.Fatalf("expected none, got %s", got)
	}
}
