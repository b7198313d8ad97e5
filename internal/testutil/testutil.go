package testutil

import (
	"io"
	"testing"

	"storefront_service/pkg/db"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OpenInMemoryDB opens a migrated in-memory SQLite database.
// The name keeps databases of different tests apart while letting pooled connections share one.
func OpenInMemoryDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	database, err := db.Connect("file:"+name+"?mode=memory&cache=shared", db.Options{Driver: "sqlite", MaxOpenConns: 1}, QuietLogger())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(database) })
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return database
}

// QuietLogger returns a logrus logger that discards output.
func QuietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
