package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	embeddedmigrations "github.com/terraincognita07/cradle/migrations"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const memoryDSN = ":memory:"

// OpenSQLite opens the database at dbPath, or a private in-memory database
// when dbPath is empty, and applies the embedded migrations.
func OpenSQLite(dbPath string, logger zerolog.Logger) (*gorm.DB, error) {
	dsn := memoryDSN
	if trimmed := strings.TrimSpace(dbPath); trimmed != "" {
		if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", trimmed)
	}

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			gormLogWriter{logger: logger.With().Str("component", "gorm").Logger()},
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if dsn == memoryDSN {
		// Every pooled connection to :memory: would see its own empty database.
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("open sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := applyMigrations(database, embeddedmigrations.Files); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	logger.Debug().Str("path", dbPath).Bool("in_memory", dsn == memoryDSN).Msg("sqlite database ready")
	return database, nil
}

type gormLogWriter struct {
	logger zerolog.Logger
}

func (writer gormLogWriter) Printf(format string, args ...interface{}) {
	writer.logger.Warn().Msgf(strings.TrimSpace(format), args...)
}
