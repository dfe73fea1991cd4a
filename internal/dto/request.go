package dto

import (
	"errors"

	"noteful-be/internal/constant"
	"noteful-be/internal/pkg/fields"
	"noteful-be/internal/pkg/serverutils"
)

// PickBody keeps the recognized fields of a request body. Malformed bodies
// become validation errors.
func PickBody(body []byte, recognized ...string) (fields.Fields, error) {
	f, err := fields.Pick(body, recognized...)
	if err != nil {
		return nil, fieldError(err)
	}
	return f, nil
}

func fieldError(err error) error {
	if errors.Is(err, fields.ErrNotObject) {
		return serverutils.NewValidationError(constant.RequestBodyNotObjectMessage)
	}
	var typeErr *fields.TypeError
	if errors.As(err, &typeErr) {
		return &serverutils.ValidationError{Field: typeErr.Field, Message: typeErr.Error()}
	}
	return err
}
