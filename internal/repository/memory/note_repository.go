package memory

import (
	"context"
	"slices"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func noteField(n *entity.Note, field string) interface{} {
	switch field {
	case "id":
		return n.Id
	case "title":
		return n.Title
	case "folder_id":
		if n.FolderId == nil {
			return nil
		}
		return *n.FolderId
	case "tags":
		return n.Tags
	case "created_at":
		return n.CreatedAt
	case "updated_at":
		return n.UpdatedAt
	}
	return nil
}

func cloneNote(n *entity.Note) *entity.Note {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return r.CreateMany(ctx, []*entity.Note{note})
}

func (r *NoteRepository) CreateMany(ctx context.Context, notes []*entity.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seen := make(map[string]bool, len(notes))
	for _, n := range notes {
		if _, exists := r.store.notes.Get(n.Id); exists || seen[n.Id] {
			return contract.ErrDuplicateKey
		}
		seen[n.Id] = true
	}

	now := r.store.now()
	for _, n := range notes {
		n.CreatedAt, n.UpdatedAt = now, now
		if n.Tags == nil {
			n.Tags = []string{}
		}
		r.store.notes.SetDefault(n.Id, cloneNote(n))
	}
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, changes entity.NoteChanges) (*entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	x, found := r.store.notes.Get(id)
	if !found {
		return nil, nil
	}

	updated := cloneNote(x.(*entity.Note))
	changes.Apply(updated)
	updated.UpdatedAt = r.store.now()
	r.store.notes.SetDefault(id, updated)

	return cloneNote(updated), nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, found := r.store.notes.Get(id); !found {
		return false, nil
	}
	r.store.notes.Delete(id)
	return true, nil
}

func (r *NoteRepository) DeleteMany(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := query(items[entity.Note](r.store.notes), noteField, specs)
	if err != nil {
		return 0, err
	}
	for _, n := range rows {
		r.store.notes.Delete(n.Id)
	}
	return int64(len(rows)), nil
}

func (r *NoteRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := int64(r.store.notes.ItemCount())
	r.store.notes.Flush()
	return n, nil
}

func (r *NoteRepository) PullTag(ctx context.Context, tagId string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := query(items[entity.Note](r.store.notes), noteField, []specification.Specification{
		specification.HasTag{TagID: tagId},
	})
	if err != nil {
		return 0, err
	}

	for _, n := range rows {
		updated := cloneNote(n)
		updated.Tags = slices.DeleteFunc(updated.Tags, func(t string) bool { return t == tagId })
		r.store.notes.SetDefault(n.Id, updated)
	}
	return int64(len(rows)), nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := query(items[entity.Note](r.store.notes), noteField, specs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Note, len(rows))
	for i, n := range rows {
		out[i] = cloneNote(n)
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
