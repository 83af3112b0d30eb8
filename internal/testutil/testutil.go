package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/emuhs/s2p-api/internal/procurement/repository"
	"github.com/emuhs/s2p-api/pkg/database"
)

var dbSeq atomic.Uint64

// DB opens a private in-memory SQLite database with the procurement schema.
// Each call gets its own database, closed when the test ends.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbSeq.Add(1))

	db, err := database.OpenSQLite(dsn)
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Gateway returns a persistence gateway over a fresh test database
func Gateway(tb testing.TB) *database.Gateway {
	tb.Helper()
	return database.NewGateway(DB(tb))
}

// Store returns a procurement store over a fresh test database
func Store(tb testing.TB) *repository.GormStore {
	tb.Helper()
	return repository.NewGormStore(Gateway(tb))
}
