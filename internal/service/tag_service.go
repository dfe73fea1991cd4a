package service

import (
	"context"
	"errors"

	"noteful-be/internal/constant"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/pkg/objectid"
	"noteful-be/internal/pkg/serverutils"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/pkg/events"

	"golang.org/x/sync/errgroup"
)

const tagModule = "TagService"

type ITagService interface {
	GetAll(ctx context.Context) ([]*dto.TagResponse, error)
	Show(ctx context.Context, id string) (*dto.TagResponse, error)
	Create(ctx context.Context, req *dto.NameRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, req *dto.NameRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, id string) error
}

type tagService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewTagService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) ITagService {
	return &tagService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (c *tagService) GetAll(ctx context.Context) ([]*dto.TagResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: constant.OrderByName})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		res = append(res, dto.NewTagResponse(tag))
	}
	return res, nil
}

func (c *tagService) Show(ctx context.Context, id string) (*dto.TagResponse, error) {
	id, ok := objectid.Normalize(id)
	if !ok {
		return nil, serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, serverutils.ErrNotFound
	}

	return dto.NewTagResponse(tag), nil
}

func (c *tagService) Create(ctx context.Context, req *dto.NameRequest) (*dto.TagResponse, error) {
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"name": constant.TagNameRequiredMessage,
	}); err != nil {
		return nil, err
	}

	tag := entity.Tag{
		Id:   objectid.New(),
		Name: req.Name,
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, translateTagError(err)
	}

	publishChange(ctx, c.publisherService, c.logger, tagModule, events.TagCreated, map[string]interface{}{
		"id":   tag.Id,
		"name": tag.Name,
	})

	return dto.NewTagResponse(&tag), nil
}

func (c *tagService) Update(ctx context.Context, req *dto.NameRequest) (*dto.TagResponse, error) {
	id, ok := objectid.Normalize(req.Id)
	if !ok {
		return nil, serverutils.NewInvalidIdentifierError("id")
	}
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"name": constant.TagNameRequiredMessage,
	}); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().Rename(ctx, id, req.Name)
	if err != nil {
		return nil, translateTagError(err)
	}
	if tag == nil {
		return nil, serverutils.ErrNotFound
	}

	publishChange(ctx, c.publisherService, c.logger, tagModule, events.TagUpdated, map[string]interface{}{
		"id":   tag.Id,
		"name": tag.Name,
	})

	return dto.NewTagResponse(tag), nil
}

// Delete removes the tag and pulls it from every note concurrently. Both
// calls always run to completion; notes are detached even when the tag was
// already gone.
func (c *tagService) Delete(ctx context.Context, id string) error {
	id, ok := objectid.Normalize(id)
	if !ok {
		return serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	var (
		found    bool
		detached int64
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		found, err = uow.TagRepository().Delete(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		detached, err = uow.NoteRepository().PullTag(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error(tagModule, "Tag delete failed", map[string]interface{}{
			"tag_id": id,
			"error":  err,
		})
		return err
	}
	if !found {
		return serverutils.ErrNotFound
	}

	c.logger.Debug(tagModule, "Tag deleted", map[string]interface{}{
		"tag_id":         id,
		"notes_detached": detached,
	})
	publishChange(ctx, c.publisherService, c.logger, tagModule, events.TagDeleted, map[string]interface{}{
		"id":            id,
		"notesDetached": detached,
	})

	return nil
}

func translateTagError(err error) error {
	if errors.Is(err, contract.ErrDuplicateKey) {
		return &serverutils.ValidationError{Field: "name", Message: constant.TagNameExistsMessage}
	}
	return err
}
