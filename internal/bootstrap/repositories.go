package bootstrap

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pockettrader/pockettrader/internal/database"
	"github.com/pockettrader/pockettrader/internal/database/memory"
	"github.com/pockettrader/pockettrader/internal/database/postgres"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User      repository.User
	Catalog   repository.Catalog
	Inventory repository.Inventory
	Trade     repository.Trade
}

// InitializePostgresRepositories creates repository implementations backed
// by the shared connection pool.
func InitializePostgresRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Trade:     postgres.NewTradeRepository(dbPool),
	}
}

// InitializeMemoryRepositories creates repositories over a single shared
// in-memory store. Intended for demos and local development without a
// database.
func InitializeMemoryRepositories() *Repositories {
	store := memory.NewStore()
	return &Repositories{
		User:      store,
		Catalog:   store,
		Inventory: store,
		Trade:     memory.NewTradeStore(store),
	}
}

// memoryPool satisfies database.Pool when no database is configured, so
// the readiness endpoint always reports healthy in memory mode.
type memoryPool struct{}

func (memoryPool) Ping(context.Context) error { return nil }
func (memoryPool) Close()                     {}

// NewMemoryPool returns a no-op connection pool for the in-memory store.
func NewMemoryPool() database.Pool {
	return memoryPool{}
}
