package service

import (
	"context"
	"regexp"
	"slices"

	"noteful-be/internal/constant"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/pkg/objectid"
	"noteful-be/internal/pkg/serverutils"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/pkg/events"
)

const noteModule = "NoteService"

type INoteService interface {
	GetAll(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id string) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (c *noteService) GetAll(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: constant.OrderByUpdatedAt, Desc: true},
		specification.OrderBy{Field: constant.OrderById, Desc: true},
	}
	if req.SearchTerm != "" {
		if _, err := regexp.Compile(req.SearchTerm); err != nil {
			return nil, &serverutils.ValidationError{Field: "searchTerm", Message: constant.SearchTermInvalidMessage}
		}
		specs = append(specs, specification.TitleMatches{Pattern: req.SearchTerm})
	}
	// A malformed filter id cannot match a stored id, so it is passed as is
	if req.FolderId != "" {
		specs = append(specs, specification.ByFolderID{FolderID: canonicalFilter(req.FolderId)})
	}
	if req.TagId != "" {
		specs = append(specs, specification.HasTag{TagID: canonicalFilter(req.TagId)})
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, dto.NewNoteResponse(note))
	}
	return res, nil
}

func (c *noteService) Show(ctx context.Context, id string) (*dto.NoteResponse, error) {
	id, ok := objectid.Normalize(id)
	if !ok {
		return nil, serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.ErrNotFound
	}

	return dto.NewNoteResponse(note), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"title": constant.NoteTitleRequiredMessage,
	}); err != nil {
		return nil, err
	}

	tags, _ := objectid.NormalizeAll(req.Tags)
	note := entity.Note{
		Id:       objectid.New(),
		Title:    req.Title,
		Content:  req.Content,
		FolderId: canonicalRef(req.FolderId),
		Tags:     uniqueTags(tags),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	publishChange(ctx, c.publisherService, c.logger, noteModule, events.NoteCreated, map[string]interface{}{
		"id": note.Id,
	})

	return dto.NewNoteResponse(&note), nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"title": constant.NoteTitleEmptyMessage,
	}); err != nil {
		return nil, err
	}

	id, _ := objectid.Normalize(req.Id)
	changes := entity.NoteChanges{
		Title:       req.Title,
		SetContent:  req.SetContent,
		Content:     req.Content,
		SetFolderId: req.SetFolderId,
		FolderId:    canonicalRef(req.FolderId),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.ErrNotFound
	}

	publishChange(ctx, c.publisherService, c.logger, noteModule, events.NoteUpdated, map[string]interface{}{
		"id": note.Id,
	})

	return dto.NewNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, id string) error {
	id, ok := objectid.Normalize(id)
	if !ok {
		return serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.NoteRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return serverutils.ErrNotFound
	}

	publishChange(ctx, c.publisherService, c.logger, noteModule, events.NoteDeleted, map[string]interface{}{
		"id": id,
	})

	return nil
}

// canonicalRef normalizes an already validated reference.
func canonicalRef(id *string) *string {
	if id == nil {
		return nil
	}
	n, _ := objectid.Normalize(*id)
	return &n
}

func canonicalFilter(id string) string {
	if n, ok := objectid.Normalize(id); ok {
		return n
	}
	return id
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
