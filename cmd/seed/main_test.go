package main

import (
	"context"
	"testing"

	"noteful-be/internal/pkg/objectid"
	"noteful-be/internal/repository/memory"
	"noteful-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesUseValidIds(t *testing.T) {
	for _, f := range seedFolders {
		assert.True(t, objectid.IsValid(f.Id), f.Id)
	}
	for _, tg := range seedTags {
		assert.True(t, objectid.IsValid(tg.Id), tg.Id)
	}
	for _, n := range seedNotes {
		assert.True(t, objectid.IsValid(n.Id), n.Id)
		if n.FolderId != nil {
			assert.True(t, objectid.IsValid(*n.FolderId), *n.FolderId)
		}
		for _, tag := range n.Tags {
			assert.True(t, objectid.IsValid(tag), tag)
		}
	}
}

func TestSeed_ReplacesExistingData(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())

	first, err := seed(ctx, factory)
	require.NoError(t, err)
	for _, r := range first {
		assert.Zero(t, r.removed, r.label)
	}

	second, err := seed(ctx, factory)
	require.NoError(t, err)
	assert.Equal(t, []summary{
		{"folders", int64(len(seedFolders)), len(seedFolders)},
		{"tags", int64(len(seedTags)), len(seedTags)},
		{"notes", int64(len(seedNotes)), len(seedNotes)},
	}, second)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.NoteRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedNotes)), count)

	inDrafts, err := uow.NoteRepository().FindAll(ctx, specification.ByFolderID{FolderID: "111111111111111111111101"})
	require.NoError(t, err)
	assert.Len(t, inDrafts, 2)
}
