package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/models"
)

const MaxPeriodNotesLength = 2000

var (
	ErrStartDateRequired = errors.New("start date is required")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInconsistentRange = errors.New("end date is before start date")
	ErrInvalidPeriodFlow = errors.New("invalid period flow")
)

// PeriodEntryInput is the raw shape accepted from forms, JSON and YAML.
type PeriodEntryInput struct {
	StartDate string   `json:"start_date" yaml:"start_date" form:"start_date"`
	EndDate   string   `json:"end_date" yaml:"end_date" form:"end_date"`
	Flow      string   `json:"flow" yaml:"flow" form:"flow"`
	Symptoms  []string `json:"symptoms" yaml:"symptoms" form:"symptoms"`
	Notes     string   `json:"notes" yaml:"notes" form:"notes"`
}

// NormalizePeriodEntryInput validates input and returns an entry without an ID.
func NormalizePeriodEntryInput(input PeriodEntryInput) (models.PeriodEntry, error) {
	if strings.TrimSpace(input.StartDate) == "" {
		return models.PeriodEntry{}, ErrStartDateRequired
	}
	startDate, err := caldate.Parse(input.StartDate)
	if err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: start date: %v", ErrInvalidDateFormat, err)
	}

	var endDate caldate.Date
	if strings.TrimSpace(input.EndDate) != "" {
		endDate, err = caldate.Parse(input.EndDate)
		if err != nil {
			return models.PeriodEntry{}, fmt.Errorf("%w: end date: %v", ErrInvalidDateFormat, err)
		}
		if endDate.Before(startDate) {
			return models.PeriodEntry{}, ErrInconsistentRange
		}
	}

	flow := strings.ToLower(strings.TrimSpace(input.Flow))
	if flow == "" {
		flow = models.DefaultFlow
	}
	if !IsValidPeriodFlow(flow) {
		return models.PeriodEntry{}, ErrInvalidPeriodFlow
	}

	return models.PeriodEntry{
		StartDate: startDate,
		EndDate:   endDate,
		Flow:      flow,
		Symptoms:  NormalizeSymptomTags(input.Symptoms),
		Notes:     TrimPeriodNotes(strings.TrimSpace(input.Notes)),
	}, nil
}

func IsValidPeriodFlow(flow string) bool {
	switch flow {
	case models.FlowLight, models.FlowMedium, models.FlowHeavy:
		return true
	default:
		return false
	}
}

// NormalizeSymptomTags keeps first-seen order and drops blanks and
// case-insensitive duplicates.
func NormalizeSymptomTags(values []string) []string {
	tags := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, trimmed)
	}
	return tags
}

func TrimPeriodNotes(value string) string {
	if len(value) <= MaxPeriodNotesLength {
		return value
	}
	cut := MaxPeriodNotesLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

// IsPeriodInputError reports whether err came from input validation.
func IsPeriodInputError(err error) bool {
	return errors.Is(err, ErrStartDateRequired) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInconsistentRange) ||
		errors.Is(err, ErrInvalidPeriodFlow)
}
