package bootstrap

import (
	"fmt"

	"noteful-be/internal/config"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/repository/memory"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/pkg/database"
)

// NewRepositoryFactory opens the configured store. The returned func
// releases it.
func NewRepositoryFactory(cfg *config.Config, log logger.ILogger) (unitofwork.RepositoryFactory, func() error, error) {
	switch cfg.Database.Driver {
	case config.StorageDriverMemory:
		log.Warn("Bootstrap", "Using in-memory storage, data is lost on exit", nil)
		return memory.NewRepositoryFactory(memory.NewStore()), func() error { return nil }, nil

	case config.StorageDriverPostgres:
		db, err := database.NewGormDB(database.GormConfig{
			DSN:          cfg.Database.Connection,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			Verbose:      !cfg.IsProduction(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return unitofwork.NewRepositoryFactory(db), func() error { return database.Close(db) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Database.Driver)
	}
}
