package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"noteful-be/internal/pkg/objectid"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so messages match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectid.IsValid(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Messages maps a JSON field name to the message reported when that field
// fails a rule other than objectid.
type Messages map[string]string

// ValidateRequest validates req and converts the first violation, in struct
// field order, into an InvalidIdentifierError or a ValidationError.
func ValidateRequest(req interface{}, messages Messages) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field, _, _ := strings.Cut(fe.Field(), "[")
	if fe.Tag() == "objectid" {
		return NewInvalidIdentifierError(field)
	}

	msg, ok := messages[field]
	if !ok {
		msg = fmt.Sprintf("`%s` is not valid", field)
	}
	return &ValidationError{Field: field, Message: msg}
}
