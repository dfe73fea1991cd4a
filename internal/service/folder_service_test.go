package service

import (
	"context"
	"errors"
	"testing"

	"noteful-be/internal/dto"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/pkg/serverutils"
	"noteful-be/internal/repository/memory"
	"noteful-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderService_CreateShowList(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	for _, name := range []string{"Work", "Archive", "Personal"} {
		_, err := fx.folders.Create(ctx, &dto.NameRequest{Name: name})
		require.NoError(t, err)
	}

	all, err := fx.folders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Archive", "Personal", "Work"}, []string{all[0].Name, all[1].Name, all[2].Name})

	got, err := fx.folders.Show(ctx, all[0].Id)
	require.NoError(t, err)
	assert.Equal(t, all[0], got)
}

func TestFolderService_CreateValidation(t *testing.T) {
	fx := newFixture()

	_, err := fx.folders.Create(context.Background(), &dto.NameRequest{})
	assertValidation(t, err, "Request must include folder `name`")
	assert.Zero(t, fx.factory.calls.Load())
}

func TestFolderService_DuplicateName(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	_, err := fx.folders.Create(ctx, &dto.NameRequest{Name: "Work"})
	require.NoError(t, err)
	other, err := fx.folders.Create(ctx, &dto.NameRequest{Name: "Home"})
	require.NoError(t, err)

	_, err = fx.folders.Create(ctx, &dto.NameRequest{Name: "Work"})
	assertValidation(t, err, "The folder name already exists")

	_, err = fx.folders.Update(ctx, &dto.NameRequest{Id: other.Id, Name: "Work"})
	assertValidation(t, err, "The folder name already exists")

	all, err := fx.folders.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFolderService_Update(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	folder, err := fx.folders.Create(ctx, &dto.NameRequest{Name: "Work"})
	require.NoError(t, err)

	updated, err := fx.folders.Update(ctx, &dto.NameRequest{Id: folder.Id, Name: "Office"})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, folder.Id, updated.Id)

	_, err = fx.folders.Update(ctx, &dto.NameRequest{Id: folder.Id})
	assertValidation(t, err, "Must provide a valid `name`")

	_, err = fx.folders.Update(ctx, &dto.NameRequest{Id: "bad", Name: ""})
	assertInvalidId(t, err, "id")

	_, err = fx.folders.Update(ctx, &dto.NameRequest{Id: "000000000000000000000099", Name: "x"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestFolderService_Identifiers(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	_, err := fx.folders.Show(ctx, "bad")
	assertInvalidId(t, err, "id")
	assertInvalidId(t, fx.folders.Delete(ctx, "bad"), "id")
	assert.Zero(t, fx.factory.calls.Load())

	_, err = fx.folders.Show(ctx, "000000000000000000000099")
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestFolderService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	keep, err := fx.folders.Create(ctx, &dto.NameRequest{Name: "Keep"})
	require.NoError(t, err)
	drop, err := fx.folders.Create(ctx, &dto.NameRequest{Name: "Drop"})
	require.NoError(t, err)

	for _, f := range []string{drop.Id, drop.Id, keep.Id} {
		_, err := fx.notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", FolderId: strPtr(f)})
		require.NoError(t, err)
	}
	_, err = fx.notes.Create(ctx, &dto.CreateNoteRequest{Title: "loose"})
	require.NoError(t, err)

	require.NoError(t, fx.folders.Delete(ctx, drop.Id))

	left, err := fx.notes.GetAll(ctx, &dto.ListNotesRequest{FolderId: drop.Id})
	require.NoError(t, err)
	assert.Empty(t, left)

	all, err := fx.notes.GetAll(ctx, &dto.ListNotesRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = fx.folders.Show(ctx, drop.Id)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
	assert.ErrorIs(t, fx.folders.Delete(ctx, drop.Id), serverutils.ErrNotFound)

	var deleted events.Event
	for _, e := range fx.publisher.events {
		if e.EventType() == events.FolderDeleted {
			deleted = e
		}
	}
	require.NotNil(t, deleted)
	assert.Equal(t, int64(2), deleted.Payload()["notesDeleted"])
}

func TestFolderService_CascadeFailureKeepsFolderDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	base := memory.NewRepositoryFactory(store)
	publisher := &recordingPublisher{}
	log := logger.NewNopLogger()

	healthy := NewFolderService(base, publisher, log)
	folder, err := healthy.Create(ctx, &dto.NameRequest{Name: "Work"})
	require.NoError(t, err)

	boom := errors.New("cascade failed")
	broken := NewFolderService(&faultyFactory{RepositoryFactory: base, err: boom}, publisher, log)

	err = broken.Delete(ctx, folder.Id)
	assert.ErrorIs(t, err, boom)

	_, err = healthy.Show(ctx, folder.Id)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}
