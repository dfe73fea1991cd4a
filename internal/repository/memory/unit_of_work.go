package memory

import (
	"context"

	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/unitofwork"
)

// UnitOfWork hands out repositories over a shared Store. The store has no
// transactions: Begin, Commit and Rollback only track state, and writes made
// before a Rollback stay applied.
type UnitOfWork struct {
	store  *Store
	active bool
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return errTxStarted
	}
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit() error {
	if !u.active {
		return errNoTx
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if !u.active {
		return errNoTx
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) FolderRepository() contract.FolderRepository {
	return NewFolderRepository(u.store)
}

func (u *UnitOfWork) TagRepository() contract.TagRepository {
	return NewTagRepository(u.store)
}

func (u *UnitOfWork) NoteRepository() contract.NoteRepository {
	return NewNoteRepository(u.store)
}

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
