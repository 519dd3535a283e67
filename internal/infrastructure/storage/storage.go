// Package storage picks and opens the persistence backend named by configuration.
package storage

import (
	"context"
	"fmt"

	"team-showcase.backend/internal/config"
	domainrepos "team-showcase.backend/internal/domain/repositories"
	"team-showcase.backend/internal/infrastructure/datasources/sqldb"
	"team-showcase.backend/internal/infrastructure/document"
	"team-showcase.backend/internal/infrastructure/memory"
	"team-showcase.backend/internal/infrastructure/repositories"
)

var (
	openSQL      = sqldb.NewConnection
	connectMongo = func(ctx context.Context, cfg config.MongoConfig) (domainrepos.Store, error) {
		store, err := document.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
)

// Open returns a ready store for cfg.Store.Backend. The relational backend is
// migrated before it is returned.
func Open(ctx context.Context, cfg *config.Config) (domainrepos.Store, error) {
	switch backend := config.NormalizeBackend(cfg.Store.Backend); backend {
	case config.BackendMemory:
		return memory.NewStore(), nil

	case config.BackendRelational:
		db, err := openSQL(cfg.Database)
		if err != nil {
			return nil, err
		}
		store := repositories.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		return store, nil

	case config.BackendDocument:
		return connectMongo(ctx, cfg.Mongo)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
