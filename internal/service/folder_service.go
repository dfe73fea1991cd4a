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
)

const folderModule = "FolderService"

type IFolderService interface {
	GetAll(ctx context.Context) ([]*dto.FolderResponse, error)
	Show(ctx context.Context, id string) (*dto.FolderResponse, error)
	Create(ctx context.Context, req *dto.NameRequest) (*dto.FolderResponse, error)
	Update(ctx context.Context, req *dto.NameRequest) (*dto.FolderResponse, error)
	Delete(ctx context.Context, id string) error
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IFolderService {
	return &folderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (c *folderService) GetAll(ctx context.Context) ([]*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderBy{Field: constant.OrderByName})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		res = append(res, dto.NewFolderResponse(folder))
	}
	return res, nil
}

func (c *folderService) Show(ctx context.Context, id string) (*dto.FolderResponse, error) {
	id, ok := objectid.Normalize(id)
	if !ok {
		return nil, serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, serverutils.ErrNotFound
	}

	return dto.NewFolderResponse(folder), nil
}

func (c *folderService) Create(ctx context.Context, req *dto.NameRequest) (*dto.FolderResponse, error) {
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"name": constant.FolderNameRequiredMessage,
	}); err != nil {
		return nil, err
	}

	folder := entity.Folder{
		Id:   objectid.New(),
		Name: req.Name,
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, translateFolderError(err)
	}

	publishChange(ctx, c.publisherService, c.logger, folderModule, events.FolderCreated, map[string]interface{}{
		"id":   folder.Id,
		"name": folder.Name,
	})

	return dto.NewFolderResponse(&folder), nil
}

func (c *folderService) Update(ctx context.Context, req *dto.NameRequest) (*dto.FolderResponse, error) {
	id, ok := objectid.Normalize(req.Id)
	if !ok {
		return nil, serverutils.NewInvalidIdentifierError("id")
	}
	if err := serverutils.ValidateRequest(req, serverutils.Messages{
		"name": constant.FolderNameInvalidMessage,
	}); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().Rename(ctx, id, req.Name)
	if err != nil {
		return nil, translateFolderError(err)
	}
	if folder == nil {
		return nil, serverutils.ErrNotFound
	}

	publishChange(ctx, c.publisherService, c.logger, folderModule, events.FolderUpdated, map[string]interface{}{
		"id":   folder.Id,
		"name": folder.Name,
	})

	return dto.NewFolderResponse(folder), nil
}

// Delete removes the folder, then the notes filed in it. The two steps are
// not atomic: if the second fails the folder stays deleted.
func (c *folderService) Delete(ctx context.Context, id string) error {
	id, ok := objectid.Normalize(id)
	if !ok {
		return serverutils.NewInvalidIdentifierError("id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.FolderRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return serverutils.ErrNotFound
	}

	removed, err := uow.NoteRepository().DeleteMany(ctx, specification.ByFolderID{FolderID: id})
	if err != nil {
		c.logger.Error(folderModule, "Folder deleted but its notes were not", map[string]interface{}{
			"folder_id": id,
			"error":     err,
		})
		return err
	}

	c.logger.Debug(folderModule, "Folder deleted", map[string]interface{}{
		"folder_id":     id,
		"notes_deleted": removed,
	})
	publishChange(ctx, c.publisherService, c.logger, folderModule, events.FolderDeleted, map[string]interface{}{
		"id":           id,
		"notesDeleted": removed,
	})

	return nil
}

func translateFolderError(err error) error {
	if errors.Is(err, contract.ErrDuplicateKey) {
		return &serverutils.ValidationError{Field: "name", Message: constant.FolderNameExistsMessage}
	}
	return err
}
