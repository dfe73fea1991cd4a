package serverutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string   `json:"title" validate:"required"`
	FolderId *string  `json:"folderId" validate:"omitnil,objectid"`
	Tags     []string `json:"tags" validate:"dive,objectid"`
}

type samplePatch struct {
	Id    string  `json:"-"`
	Title *string `json:"title" validate:"omitnil,min=1"`
}

var sampleMessages = Messages{"title": "Must include `title` in request body"}

func strPtr(s string) *string { return &s }

func TestValidateRequest_Valid(t *testing.T) {
	req := sampleRequest{
		Title:    "Cats",
		FolderId: strPtr("111111111111111111111101"),
		Tags:     []string{"222222222222222222222200"},
	}
	assert.NoError(t, ValidateRequest(req, sampleMessages))

	assert.NoError(t, ValidateRequest(sampleRequest{Title: "no refs"}, sampleMessages))
}

func TestValidateRequest_RequiredUsesMessage(t *testing.T) {
	err := ValidateRequest(sampleRequest{FolderId: strPtr("bad")}, sampleMessages)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
	assert.Equal(t, "Must include `title` in request body", ve.Message)
}

func TestValidateRequest_ObjectIdBecomesInvalidIdentifier(t *testing.T) {
	err := ValidateRequest(sampleRequest{Title: "x", FolderId: strPtr("")}, sampleMessages)
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))
	assert.EqualError(t, err, "The `folderId` is not valid")

	err = ValidateRequest(sampleRequest{Title: "x", Tags: []string{"222222222222222222222200", "nope"}}, sampleMessages)
	var ie *InvalidIdentifierError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "tags", ie.Field)
	assert.EqualError(t, err, "The `tags` array contains an invalid `id`")
}

func TestValidateRequest_OptionalPointer(t *testing.T) {
	assert.NoError(t, ValidateRequest(samplePatch{}, nil))
	assert.NoError(t, ValidateRequest(samplePatch{Title: strPtr("t")}, nil))

	err := ValidateRequest(samplePatch{Title: strPtr("")}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "`title` is not valid", ve.Message)
}
