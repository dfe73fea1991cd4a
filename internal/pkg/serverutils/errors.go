package serverutils

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("the requested resource was not found")
	ErrInvalidIdentifier = errors.New("the identifier is not valid")
	ErrInternal          = errors.New("something went wrong on our end, please try again later")
)

// ValidationError is a rejected request field. Message is shown to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// InvalidIdentifierError is a malformed identifier in a path parameter or a
// reference field. It matches ErrInvalidIdentifier with errors.Is.
type InvalidIdentifierError struct {
	Field string
}

func NewInvalidIdentifierError(field string) error {
	return &InvalidIdentifierError{Field: field}
}

func (e *InvalidIdentifierError) Error() string {
	if e.Field == "tags" {
		return "The `tags` array contains an invalid `id`"
	}
	return fmt.Sprintf("The `%s` is not valid", e.Field)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}
