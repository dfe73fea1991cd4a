package contract

import (
	"context"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	CreateMany(ctx context.Context, notes []*entity.Note) error
	// Update applies changes and refreshes UpdatedAt. It returns nil, nil
	// when no note has the given id.
	Update(ctx context.Context, id string, changes entity.NoteChanges) (*entity.Note, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	// PullTag removes tagId from every note carrying it without touching
	// any other column.
	PullTag(ctx context.Context, tagId string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
