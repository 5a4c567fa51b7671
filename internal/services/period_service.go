package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/metrics"
	"github.com/terraincognita07/cradle/internal/models"
)

var (
	ErrPeriodEntryLoadFailed   = errors.New("load period entries failed")
	ErrPeriodEntryCreateFailed = errors.New("create period entry failed")
	ErrPeriodEntryDeleteFailed = errors.New("delete period entry failed")
	ErrPeriodEntryNotFound     = errors.New("period entry not found")
)

type PeriodEntryRepository interface {
	ListAll() ([]models.PeriodEntry, error)
	FindByID(id string) (models.PeriodEntry, bool, error)
	Create(entry *models.PeriodEntry) error
	DeleteByID(id string) (bool, error)
	DeleteAll() error
}

type PeriodService struct {
	entries PeriodEntryRepository
	newID   func() string
}

type CycleOverview struct {
	models.CycleData
	DaysUntilNextPeriod int                `json:"days_until_next_period"`
	EntryCount          int                `json:"entry_count"`
	Today               caldate.Date       `json:"today"`
	TopSymptoms         []SymptomFrequency `json:"top_symptoms"`
}

type CalendarMonth struct {
	Year      int                `json:"year"`
	Month     time.Month         `json:"month"`
	CycleData models.CycleData   `json:"cycle_data"`
	Days      []CalendarDayState `json:"days"`
}

func NewPeriodService(entries PeriodEntryRepository) *PeriodService {
	return &PeriodService{
		entries: entries,
		newID:   uuid.NewString,
	}
}

// ListEntries returns entries newest first.
func (service *PeriodService) ListEntries() ([]models.PeriodEntry, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}
	return sortEntriesNewestFirst(entries), nil
}

func (service *PeriodService) FindEntry(id string) (models.PeriodEntry, error) {
	entry, found, err := service.entries.FindByID(id)
	if err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}
	if !found {
		return models.PeriodEntry{}, ErrPeriodEntryNotFound
	}
	return entry, nil
}

// AddEntry validates input, assigns a fresh ID and stores the entry.
func (service *PeriodService) AddEntry(input PeriodEntryInput) (models.PeriodEntry, error) {
	entry, err := NormalizePeriodEntryInput(input)
	if err != nil {
		metrics.RecordEntryRejected(periodInputRejectReason(err))
		return models.PeriodEntry{}, err
	}

	entry.ID = service.newID()
	if err := service.entries.Create(&entry); err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: %v", ErrPeriodEntryCreateFailed, err)
	}
	metrics.RecordEntryCreated(entry.Flow)
	return entry, nil
}

// ImportEntries adds every input, stopping at the first failure.
func (service *PeriodService) ImportEntries(inputs []PeriodEntryInput) ([]models.PeriodEntry, error) {
	created := make([]models.PeriodEntry, 0, len(inputs))
	for index, input := range inputs {
		entry, err := service.AddEntry(input)
		if err != nil {
			return created, fmt.Errorf("entry %d: %w", index+1, err)
		}
		created = append(created, entry)
	}
	return created, nil
}

func (service *PeriodService) DeleteEntry(id string) error {
	deleted, err := service.entries.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeriodEntryDeleteFailed, err)
	}
	if !deleted {
		return ErrPeriodEntryNotFound
	}
	metrics.RecordEntryDeleted()
	return nil
}

func (service *PeriodService) ClearEntries() error {
	if err := service.entries.DeleteAll(); err != nil {
		return fmt.Errorf("%w: %v", ErrPeriodEntryDeleteFailed, err)
	}
	return nil
}

func (service *PeriodService) CycleData() (models.CycleData, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return models.CycleData{}, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}
	data := ComputeCycleData(entries)
	metrics.RecordCycleComputation(data.HasPrediction())
	return data, nil
}

func (service *PeriodService) Overview(today caldate.Date) (CycleOverview, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return CycleOverview{}, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}

	data := ComputeCycleData(entries)
	metrics.RecordCycleComputation(data.HasPrediction())
	return CycleOverview{
		CycleData:           data,
		DaysUntilNextPeriod: DaysUntilNextPeriod(data, today),
		EntryCount:          len(entries),
		Today:               today,
		TopSymptoms:         SymptomFrequencies(entries),
	}, nil
}

func (service *PeriodService) Calendar(year int, month time.Month, today caldate.Date) (CalendarMonth, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}

	data := ComputeCycleData(entries)
	return CalendarMonth{
		Year:      year,
		Month:     month,
		CycleData: data,
		Days:      BuildCalendarMonth(year, month, entries, data, today),
	}, nil
}

func (service *PeriodService) ClassifyDate(day caldate.Date) (DayClass, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return DayClassNone, fmt.Errorf("%w: %v", ErrPeriodEntryLoadFailed, err)
	}
	return ClassifyDay(day, entries, ComputeCycleData(entries)), nil
}

func periodInputRejectReason(err error) string {
	switch {
	case errors.Is(err, ErrStartDateRequired):
		return "start_required"
	case errors.Is(err, ErrInvalidDateFormat):
		return "invalid_date"
	case errors.Is(err, ErrInconsistentRange):
		return "inconsistent_range"
	case errors.Is(err, ErrInvalidPeriodFlow):
		return "invalid_flow"
	default:
		return "other"
	}
}
