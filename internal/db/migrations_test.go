package db

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
)

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "cradle-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	database := openTestDatabase(t, databasePath)
	var versions []string
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load migration records: %v", err)
	}
	if strings.Join(versions, ",") != "001" {
		t.Fatalf("expected a single applied migration 001, got %v", versions)
	}

	if !database.Migrator().HasTable("period_entries") {
		t.Fatalf("expected period_entries table to exist")
	}
}

func TestLoadMigrationsOrdersByVersion(t *testing.T) {
	files := fstest.MapFS{
		"010_later.sql":   {Data: []byte("CREATE TABLE later (id TEXT);")},
		"002_second.sql":  {Data: []byte("-- comment only line\nCREATE TABLE second (id TEXT);\nCREATE INDEX idx_second ON second(id);")},
		"README.md":       {Data: []byte("not a migration")},
		"001_initial.sql": {Data: []byte("CREATE TABLE initial (id TEXT)")},
	}

	migrations, err := loadMigrations(files)
	if err != nil {
		t.Fatalf("loadMigrations() unexpected error: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != "001" || migrations[1].Version != "002" || migrations[2].Version != "010" {
		t.Fatalf("unexpected order: %s, %s, %s", migrations[0].Version, migrations[1].Version, migrations[2].Version)
	}
	if len(migrations[1].Statements) != 2 {
		t.Fatalf("expected 2 statements in 002, got %#v", migrations[1].Statements)
	}
	if strings.Contains(migrations[1].Statements[0], "comment") {
		t.Fatalf("expected comment lines to be dropped, got %q", migrations[1].Statements[0])
	}
}

func TestLoadMigrationsRejectsDuplicatesAndEmptyFiles(t *testing.T) {
	duplicates := fstest.MapFS{
		"001_a.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
		"001_b.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
	}
	if _, err := loadMigrations(duplicates); err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}

	empty := fstest.MapFS{
		"001_empty.sql": {Data: []byte("-- nothing here\n;\n")},
	}
	if _, err := loadMigrations(empty); err == nil || !strings.Contains(err.Error(), "no SQL statements") {
		t.Fatalf("expected empty migration error, got %v", err)
	}
}

func TestApplyMigrationsSkipsAppliedVersions(t *testing.T) {
	database := openTestDatabase(t, "")
	files := fstest.MapFS{
		"002_extra.sql": {Data: []byte("CREATE TABLE extra (id TEXT PRIMARY KEY);")},
	}

	if err := applyMigrations(database, files); err != nil {
		t.Fatalf("first applyMigrations() unexpected error: %v", err)
	}
	// A second run would fail on CREATE TABLE without IF NOT EXISTS.
	if err := applyMigrations(database, files); err != nil {
		t.Fatalf("second applyMigrations() unexpected error: %v", err)
	}
	if !database.Migrator().HasTable("extra") {
		t.Fatalf("expected extra table to exist")
	}
}
