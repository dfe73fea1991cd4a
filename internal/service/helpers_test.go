package service

import (
	"context"
	"sync"
	"sync/atomic"

	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/memory"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/pkg/events"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

// countingFactory records how often storage was reached.
type countingFactory struct {
	unitofwork.RepositoryFactory
	calls atomic.Int64
}

func (f *countingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.calls.Add(1)
	return f.RepositoryFactory.NewUnitOfWork(ctx)
}

// faultyFactory swaps in a note repository whose bulk operations fail.
type faultyFactory struct {
	unitofwork.RepositoryFactory
	err error
}

func (f *faultyFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &faultyUnitOfWork{UnitOfWork: f.RepositoryFactory.NewUnitOfWork(ctx), err: f.err}
}

type faultyUnitOfWork struct {
	unitofwork.UnitOfWork
	err error
}

func (u *faultyUnitOfWork) NoteRepository() contract.NoteRepository {
	return &faultyNoteRepository{NoteRepository: u.UnitOfWork.NoteRepository(), err: u.err}
}

type faultyNoteRepository struct {
	contract.NoteRepository
	err error
}

func (r *faultyNoteRepository) DeleteMany(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, r.err
}

func (r *faultyNoteRepository) PullTag(ctx context.Context, tagId string) (int64, error) {
	return 0, r.err
}

type fixture struct {
	store     *memory.Store
	factory   *countingFactory
	publisher *recordingPublisher
	notes     INoteService
	folders   IFolderService
	tags      ITagService
}

func newFixture() *fixture {
	store := memory.NewStore()
	factory := &countingFactory{RepositoryFactory: memory.NewRepositoryFactory(store)}
	publisher := &recordingPublisher{}
	log := logger.NewNopLogger()

	return &fixture{
		store:     store,
		factory:   factory,
		publisher: publisher,
		notes:     NewNoteService(factory, publisher, log),
		folders:   NewFolderService(factory, publisher, log),
		tags:      NewTagService(factory, publisher, log),
	}
}

func strPtr(s string) *string { return &s }
