package mapper

import (
	"testing"
	"time"

	"noteful-be/internal/entity"
	"noteful-be/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNoteMapper_NilTagsBecomeEmpty(t *testing.T) {
	m := NewNoteMapper()

	e := m.ToEntity(&model.Note{Id: "000000000000000000000001", Title: "t"})
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)

	md := m.ToModel(&entity.Note{Id: "000000000000000000000001", Title: "t"})
	assert.NotNil(t, md.Tags)
	assert.Empty(t, md.Tags)
}

func TestNoteMapper_CopiesTags(t *testing.T) {
	m := NewNoteMapper()
	src := &entity.Note{Tags: []string{"222222222222222222222200"}}

	md := m.ToModel(src)
	src.Tags[0] = "changed"

	assert.Equal(t, "222222222222222222222200", md.Tags[0])
}

func TestNoteMapper_RoundTrip(t *testing.T) {
	m := NewNoteMapper()
	content := "meow"
	folder := "111111111111111111111101"
	now := time.Now().UTC()

	in := &entity.Note{
		Id:        "000000000000000000000001",
		Title:     "Cats",
		Content:   &content,
		FolderId:  &folder,
		Tags:      []string{"222222222222222222222200"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	assert.Equal(t, in, m.ToEntity(m.ToModel(in)))
}

func TestNoteMapper_ToColumns(t *testing.T) {
	m := NewNoteMapper()
	title := "New"

	assert.Empty(t, m.ToColumns(entity.NoteChanges{}))

	cols := m.ToColumns(entity.NoteChanges{Title: &title, SetFolderId: true})
	assert.Equal(t, "New", cols["title"])
	assert.Contains(t, cols, "folder_id")
	assert.Nil(t, cols["folder_id"])
	assert.NotContains(t, cols, "content")
}
