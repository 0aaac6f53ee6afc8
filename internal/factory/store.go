// Package factory selects concrete adapters from configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/config"
	"github.com/youspace/youspace/internal/store"
	"github.com/youspace/youspace/internal/store/memstore"
	"github.com/youspace/youspace/internal/store/postgres"
	"github.com/youspace/youspace/internal/store/sqlite"
)

// NewStore selects the store adapter based on cfg.DBDriver. Call sites
// receive the store.Store interface and never branch on the backend.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		log.Warn().Msg("using in-process store; data will not survive a restart")
		return memstore.New(), nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
