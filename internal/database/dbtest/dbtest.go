// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/english-school-service/internal/config"
	"github.com/SAP-F-2025/english-school-service/internal/database"
)

var (
	seq       atomic.Int64
	unsafeDSN = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// New returns a migrated in-memory database private to t
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("%s_%d", unsafeDSN.ReplaceAllString(t.Name(), "_"), seq.Add(1))
	cfg := config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
		MaxOpenConns: 1,
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg, Logger())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Logger discards output so test runs stay quiet
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
