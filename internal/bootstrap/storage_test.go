package bootstrap

import (
	"context"
	"testing"

	"noteful-be/internal/config"
	"noteful-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryFactory(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.StorageDriverMemory}}

		factory, closeStore, err := NewRepositoryFactory(cfg, logger.NewNopLogger())
		require.NoError(t, err)
		defer closeStore()

		count, err := factory.NewUnitOfWork(context.Background()).NoteRepository().Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("postgres without connection string", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.StorageDriverPostgres}}

		_, _, err := NewRepositoryFactory(cfg, logger.NewNopLogger())
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mongo"}}

		_, _, err := NewRepositoryFactory(cfg, logger.NewNopLogger())
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}

func TestNewContainer_WithoutNats(t *testing.T) {
	cfg := &config.Config{Events: config.EventsConfig{Topic: "noteful.events"}}
	factory, closeStore, err := NewRepositoryFactory(
		&config.Config{Database: config.DatabaseConfig{Driver: config.StorageDriverMemory}},
		logger.NewNopLogger(),
	)
	require.NoError(t, err)
	defer closeStore()

	c := NewContainer(context.Background(), factory, cfg, logger.NewNopLogger())
	assert.NotNil(t, c.NoteController)
	assert.NotNil(t, c.FolderController)
	assert.NotNil(t, c.TagController)
	assert.NotNil(t, c.ConsumerService)
	assert.NoError(t, c.Close())
}
