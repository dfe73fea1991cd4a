package memory

import (
	"context"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"
)

type TagRepository struct {
	store *Store
}

func NewTagRepository(store *Store) contract.TagRepository {
	return &TagRepository{store: store}
}

func tagField(f *entity.Tag, field string) interface{} {
	switch field {
	case "id":
		return f.Id
	case "name":
		return f.Name
	case "created_at":
		return f.CreatedAt
	case "updated_at":
		return f.UpdatedAt
	}
	return nil
}

// nameTaken must be called with the store lock held.
func (r *TagRepository) nameTaken(name, exceptId string) bool {
	rows, _ := query(items[entity.Tag](r.store.tags), tagField, []specification.Specification{
		specification.ByName{Name: name},
	})
	for _, row := range rows {
		if row.Id != exceptId {
			return true
		}
	}
	return false
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return r.CreateMany(ctx, []*entity.Tag{tag})
}

func (r *TagRepository) CreateMany(ctx context.Context, tags []*entity.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seen := make(map[string]bool, len(tags))
	for _, f := range tags {
		if _, exists := r.store.tags.Get(f.Id); exists || seen["id:"+f.Id] {
			return contract.ErrDuplicateKey
		}
		if r.nameTaken(f.Name, "") || seen["name:"+f.Name] {
			return contract.ErrDuplicateKey
		}
		seen["id:"+f.Id] = true
		seen["name:"+f.Name] = true
	}

	now := r.store.now()
	for _, f := range tags {
		f.CreatedAt, f.UpdatedAt = now, now
		stored := *f
		r.store.tags.SetDefault(f.Id, &stored)
	}
	return nil
}

func (r *TagRepository) Rename(ctx context.Context, id, name string) (*entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	x, found := r.store.tags.Get(id)
	if !found {
		return nil, nil
	}
	if r.nameTaken(name, id) {
		return nil, contract.ErrDuplicateKey
	}

	updated := *x.(*entity.Tag)
	updated.Name = name
	updated.UpdatedAt = r.store.now()
	r.store.tags.SetDefault(id, &updated)

	out := updated
	return &out, nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, found := r.store.tags.Get(id); !found {
		return false, nil
	}
	r.store.tags.Delete(id)
	return true, nil
}

func (r *TagRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := int64(r.store.tags.ItemCount())
	r.store.tags.Flush()
	return n, nil
}

func (r *TagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *TagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := query(items[entity.Tag](r.store.tags), tagField, specs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Tag, len(rows))
	for i, f := range rows {
		c := *f
		out[i] = &c
	}
	return out, nil
}

func (r *TagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
