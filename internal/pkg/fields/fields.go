// Package fields extracts the recognized fields of a JSON request payload.
//
// A field can be absent, present with null, or present with a value. Only
// absent fields are dropped; everything else is kept as it appeared so that
// validation can still reject an explicitly empty value.
package fields

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotObject is returned when the payload is not a JSON object.
var ErrNotObject = errors.New("payload is not a JSON object")

// TypeError reports a recognized field holding a value of the wrong shape.
type TypeError struct {
	Field string
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("`%s` must be %s", e.Field, e.Want)
}

// Fields maps recognized field names to their raw payload values.
type Fields map[string]gjson.Result

// Pick returns the entries of body whose key is in recognized. An empty body
// is treated as an empty object.
func Pick(body []byte, recognized ...string) (Fields, error) {
	out := make(Fields, len(recognized))
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrNotObject
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	allowed := make(map[string]struct{}, len(recognized))
	for _, name := range recognized {
		allowed[name] = struct{}{}
	}

	root.ForEach(func(key, value gjson.Result) bool {
		if _, ok := allowed[key.String()]; ok {
			out[key.String()] = value
		}
		return true
	})
	return out, nil
}

// Has reports whether name was present in the payload, null included.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Text returns the field as a string. Absent and null fields yield "".
// Numbers and booleans are returned in their JSON spelling.
func (f Fields) Text(name string) (string, error) {
	v, ok := f[name]
	if !ok || v.Type == gjson.Null {
		return "", nil
	}
	return scalar(name, v)
}

// OptionalText is like Text but returns nil for absent and null fields.
func (f Fields) OptionalText(name string) (*string, error) {
	v, ok := f[name]
	if !ok || v.Type == gjson.Null {
		return nil, nil
	}
	s, err := scalar(name, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// TextList returns the field as a list of strings. Absent and null fields
// yield nil.
func (f Fields) TextList(name string) ([]string, error) {
	v, ok := f[name]
	if !ok || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, &TypeError{Field: name, Want: "an array"}
	}

	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := scalar(name, item)
		if err != nil {
			return nil, &TypeError{Field: name, Want: "an array of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}

func scalar(name string, v gjson.Result) (string, error) {
	switch v.Type {
	case gjson.String:
		return v.Str, nil
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw, nil
	default:
		return "", &TypeError{Field: name, Want: "a string"}
	}
}
