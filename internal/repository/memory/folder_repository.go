package memory

import (
	"context"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"
)

type FolderRepository struct {
	store *Store
}

func NewFolderRepository(store *Store) contract.FolderRepository {
	return &FolderRepository{store: store}
}

func folderField(f *entity.Folder, field string) interface{} {
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
func (r *FolderRepository) nameTaken(name, exceptId string) bool {
	rows, _ := query(items[entity.Folder](r.store.folders), folderField, []specification.Specification{
		specification.ByName{Name: name},
	})
	for _, row := range rows {
		if row.Id != exceptId {
			return true
		}
	}
	return false
}

func (r *FolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	return r.CreateMany(ctx, []*entity.Folder{folder})
}

func (r *FolderRepository) CreateMany(ctx context.Context, folders []*entity.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seen := make(map[string]bool, len(folders))
	for _, f := range folders {
		if _, exists := r.store.folders.Get(f.Id); exists || seen["id:"+f.Id] {
			return contract.ErrDuplicateKey
		}
		if r.nameTaken(f.Name, "") || seen["name:"+f.Name] {
			return contract.ErrDuplicateKey
		}
		seen["id:"+f.Id] = true
		seen["name:"+f.Name] = true
	}

	now := r.store.now()
	for _, f := range folders {
		f.CreatedAt, f.UpdatedAt = now, now
		stored := *f
		r.store.folders.SetDefault(f.Id, &stored)
	}
	return nil
}

func (r *FolderRepository) Rename(ctx context.Context, id, name string) (*entity.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	x, found := r.store.folders.Get(id)
	if !found {
		return nil, nil
	}
	if r.nameTaken(name, id) {
		return nil, contract.ErrDuplicateKey
	}

	updated := *x.(*entity.Folder)
	updated.Name = name
	updated.UpdatedAt = r.store.now()
	r.store.folders.SetDefault(id, &updated)

	out := updated
	return &out, nil
}

func (r *FolderRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, found := r.store.folders.Get(id); !found {
		return false, nil
	}
	r.store.folders.Delete(id)
	return true, nil
}

func (r *FolderRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := int64(r.store.folders.ItemCount())
	r.store.folders.Flush()
	return n, nil
}

func (r *FolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *FolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := query(items[entity.Folder](r.store.folders), folderField, specs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Folder, len(rows))
	for i, f := range rows {
		c := *f
		out[i] = &c
	}
	return out, nil
}

func (r *FolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
