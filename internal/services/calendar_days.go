package services

import (
	"time"

	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
)

type CalendarDayState struct {
	Date        caldate.Date `json:"date"`
	Day         int          `json:"day"`
	InMonth     bool         `json:"in_month"`
	IsToday     bool         `json:"is_today"`
	Class       DayClass     `json:"class"`
	IsPeriod    bool         `json:"is_period"`
	IsPredicted bool         `json:"is_predicted"`
	IsOvulation bool         `json:"is_ovulation"`
}

// BuildCalendarMonth returns whole Sunday-first weeks covering the month.
func BuildCalendarMonth(year int, month time.Month, entries []models.PeriodEntry, data models.CycleData, today caldate.Date) []CalendarDayState {
	monthStart := caldate.FirstOfMonth(year, month)
	monthEnd := monthStart.AddMonths(1).AddDays(-1)
	gridStart := monthStart.AddDays(-int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDays(6 - int(monthEnd.Weekday()))

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDays(1) {
		class := ClassifyDay(day, entries, data)
		days = append(days, CalendarDayState{
			Date:        day,
			Day:         day.Day(),
			InMonth:     day.Month() == monthStart.Month(),
			IsToday:     day.Equal(today),
			Class:       class,
			IsPeriod:    class == DayClassLoggedPeriod,
			IsPredicted: class == DayClassPredictedPeriod,
			IsOvulation: class == DayClassOvulation,
		})
	}
	return days
}
