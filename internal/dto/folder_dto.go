package dto

import (
	"time"

	"noteful-be/internal/entity"
	"noteful-be/internal/pkg/fields"
)

// NamedFields are the recognized fields of folder and tag payloads.
var NamedFields = []string{"name"}

// NameRequest creates (Id empty) or renames a folder or tag.
type NameRequest struct {
	Id   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

func NewNameRequest(id string, f fields.Fields) (*NameRequest, error) {
	name, err := f.Text("name")
	if err != nil {
		return nil, fieldError(err)
	}
	return &NameRequest{Id: id, Name: name}, nil
}

type FolderResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewFolderResponse(f *entity.Folder) *FolderResponse {
	return &FolderResponse{
		Id:        f.Id,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
