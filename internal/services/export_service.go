package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/cradle/internal/models"
)

var ExportCSVHeaders = []string{
	"Start date",
	"End date",
	"Duration days",
	"Flow",
	"Symptoms",
	"Notes",
}

type ExportEntryReader interface {
	ListEntries() ([]models.PeriodEntry, error)
}

type ExportService struct {
	entries ExportEntryReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportRow struct {
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	DurationDays int      `json:"duration_days"`
	Flow         string   `json:"flow"`
	Symptoms     []string `json:"symptoms"`
	Notes        string   `json:"notes"`
}

func NewExportService(entries ExportEntryReader) *ExportService {
	return &ExportService{entries: entries}
}

// BuildRows returns rows oldest first, the natural reading order for a file.
func (service *ExportService) BuildRows() ([]ExportRow, error) {
	entries, err := service.entries.ListEntries()
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(entries))
	for index := len(entries) - 1; index >= 0; index-- {
		entry := entries[index]
		symptoms := entry.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		rows = append(rows, ExportRow{
			StartDate:    entry.StartDate.String(),
			EndDate:      entry.EndDate.String(),
			DurationDays: entry.DurationDays(),
			Flow:         normalizeExportFlow(entry.Flow),
			Symptoms:     symptoms,
			Notes:        entry.Notes,
		})
	}
	return rows, nil
}

func (service *ExportService) BuildSummary() (ExportSummary, error) {
	entries, err := service.entries.ListEntries()
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	first := entries[0].StartDate
	last := entries[0].LastDay()
	for _, entry := range entries[1:] {
		if entry.StartDate.Before(first) {
			first = entry.StartDate
		}
		if entry.LastDay().After(last) {
			last = entry.LastDay()
		}
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     first.String(),
		DateTo:       last.String(),
	}, nil
}

func (row ExportRow) Columns() []string {
	duration := ""
	if row.DurationDays > 0 {
		duration = strconv.Itoa(row.DurationDays)
	}
	return []string{
		row.StartDate,
		row.EndDate,
		duration,
		csvFlowLabel(row.Flow),
		strings.Join(row.Symptoms, "; "),
		row.Notes,
	}
}

func csvFlowLabel(flow string) string {
	switch normalizeExportFlow(flow) {
	case models.FlowLight:
		return "Light"
	case models.FlowHeavy:
		return "Heavy"
	default:
		return "Medium"
	}
}

func normalizeExportFlow(flow string) string {
	switch strings.ToLower(strings.TrimSpace(flow)) {
	case models.FlowLight:
		return models.FlowLight
	case models.FlowHeavy:
		return models.FlowHeavy
	default:
		return models.FlowMedium
	}
}
