package main

import (
	"context"
	"fmt"

	"cellkit/internal/config"
	"cellkit/internal/logger"
	"cellkit/internal/store"
	"cellkit/internal/store/postgres"
	"cellkit/internal/store/sqlite"
)

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	logger.DebugKV(ctx, "opening catalog", "backend", cfg.Backend())

	switch cfg.Backend() {
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.Database.DSN)
	case config.BackendPostgres:
		return postgres.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database dsn: %s", cfg.Database.DSN)
	}
}
