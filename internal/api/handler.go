package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/cradle/internal/caldate"
	"github.com/terraincognita07/cradle/internal/db"
	"github.com/terraincognita07/cradle/internal/security"
	"github.com/terraincognita07/cradle/internal/services"
	"gorm.io/gorm"
)

const (
	invalidTokenLimit  = 10
	invalidTokenWindow = 15 * time.Minute
)

type Handler struct {
	repositories  *db.Repositories
	periodService *services.PeriodService
	exportService *services.ExportService
	tokens        *security.TokenAuthority
	tokenFailures *attemptLimiter
	location      *time.Location
	logger        zerolog.Logger
	now           func() time.Time
}

// NewHandler wires services over database. An empty secretKey leaves the
// API open.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location, logger zerolog.Logger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		tokenFailures: newAttemptLimiter(invalidTokenLimit, invalidTokenWindow),
		location:      location,
		logger:        logger,
		now:           time.Now,
	}
	if secretKey != "" {
		tokens, err := security.NewTokenAuthority(secretKey)
		if err != nil {
			return nil, err
		}
		handler.tokens = tokens
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.periodService = services.NewPeriodService(handler.repositories.Periods)
	handler.exportService = services.NewExportService(handler.periodService)
	return handler
}

func (handler *Handler) AuthEnabled() bool {
	return handler.tokens != nil
}

// today is the current calendar date in the configured location.
func (handler *Handler) today() caldate.Date {
	return caldate.FromTime(handler.now().In(handler.location))
}
