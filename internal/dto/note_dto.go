package dto

import (
	"time"

	"noteful-be/internal/entity"
	"noteful-be/internal/pkg/fields"
)

var (
	CreateNoteFields = []string{"title", "content", "folderId", "tags"}
	UpdateNoteFields = []string{"title", "content", "folderId"}
)

// Field order is validation order: the first failing field is reported.
type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required"`
	FolderId *string  `json:"folderId" validate:"omitnil,objectid"`
	Tags     []string `json:"tags" validate:"dive,objectid"`
	Content  *string  `json:"content"`
}

func NewCreateNoteRequest(f fields.Fields) (*CreateNoteRequest, error) {
	title, err := f.Text("title")
	if err != nil {
		return nil, fieldError(err)
	}
	content, err := f.OptionalText("content")
	if err != nil {
		return nil, fieldError(err)
	}
	folderId, err := f.OptionalText("folderId")
	if err != nil {
		return nil, fieldError(err)
	}
	tags, err := f.TextList("tags")
	if err != nil {
		return nil, fieldError(err)
	}
	if tags == nil {
		tags = []string{}
	}

	return &CreateNoteRequest{
		Title:    title,
		FolderId: folderId,
		Tags:     tags,
		Content:  content,
	}, nil
}

// UpdateNoteRequest carries only the fields present in the payload. A
// present null clears content or folderId; Set* tells absent from null.
type UpdateNoteRequest struct {
	Id          string  `json:"id" validate:"objectid"`
	FolderId    *string `json:"folderId" validate:"omitnil,objectid"`
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Content     *string `json:"content"`
	SetFolderId bool    `json:"-"`
	SetContent  bool    `json:"-"`
}

func NewUpdateNoteRequest(id string, f fields.Fields) (*UpdateNoteRequest, error) {
	req := &UpdateNoteRequest{Id: id}

	if f.Has("title") {
		// A null title is as unusable as an empty one
		title, err := f.Text("title")
		if err != nil {
			return nil, fieldError(err)
		}
		req.Title = &title
	}

	if f.Has("content") {
		content, err := f.OptionalText("content")
		if err != nil {
			return nil, fieldError(err)
		}
		req.Content = content
		req.SetContent = true
	}

	if f.Has("folderId") {
		folderId, err := f.OptionalText("folderId")
		if err != nil {
			return nil, fieldError(err)
		}
		req.FolderId = folderId
		req.SetFolderId = true
	}

	return req, nil
}

type ListNotesRequest struct {
	SearchTerm string
	FolderId   string
	TagId      string
}

type NoteResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	FolderId  *string   `json:"folderId"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewNoteResponse(n *entity.Note) *NoteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return &NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		FolderId:  n.FolderId,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
