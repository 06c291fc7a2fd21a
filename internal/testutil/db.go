package testutil

import (
	"fmt"
	"testing"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB creates an isolated in-memory SQLite database with all models migrated.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", ulid.Make().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.Bot{}, models.Alert{}, models.ExchangeCredential{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Logger returns a no-op zap logger for tests.
func Logger() *zap.Logger {
	return zap.NewNop()
}
