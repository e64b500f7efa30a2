package mysql

import (
	"testing"

	infradb "compass-backend/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// domain models carry no MySQL-only column types, so the production
// migration runs unchanged. TranslateError must be on: the repositories
// rely on gorm.ErrDuplicatedKey for unique-index races.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infradb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
