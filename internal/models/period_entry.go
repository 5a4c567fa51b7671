package models

import (
	"time"

	"github.com/terraincognita07/cradle/internal/caldate"
)

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const DefaultFlow = FlowMedium

type PeriodEntry struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	StartDate caldate.Date `gorm:"type:text;not null;index" json:"start_date"`
	EndDate   caldate.Date `gorm:"type:text" json:"end_date"`
	Flow      string       `gorm:"not null;default:medium" json:"flow"`
	Symptoms  []string     `gorm:"serializer:json" json:"symptoms"`
	Notes     string       `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
}

// HasEndDate reports whether the period end was recorded.
func (entry PeriodEntry) HasEndDate() bool {
	return !entry.EndDate.IsZero()
}

// LastDay is EndDate when recorded, otherwise StartDate.
func (entry PeriodEntry) LastDay() caldate.Date {
	if entry.HasEndDate() {
		return entry.EndDate
	}
	return entry.StartDate
}

// DurationDays is the inclusive day count, or 0 while the period is open.
func (entry PeriodEntry) DurationDays() int {
	if !entry.HasEndDate() {
		return 0
	}
	return caldate.AbsDaysBetween(entry.StartDate, entry.EndDate) + 1
}
