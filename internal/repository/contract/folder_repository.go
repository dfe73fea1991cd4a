package contract

import (
	"context"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	CreateMany(ctx context.Context, folders []*entity.Folder) error
	// Rename returns nil, nil when no folder has the given id.
	Rename(ctx context.Context, id, name string) (*entity.Folder, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
