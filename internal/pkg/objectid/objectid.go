// Package objectid validates and generates entity identifiers.
//
// Identifiers are 24 character hexadecimal strings, the hex form of a BSON
// ObjectID. They are stored and compared in lower case.
package objectid

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// IsValid reports whether s is a well-formed identifier.
func IsValid(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}

// Normalize returns the canonical form of s and whether s was valid.
func Normalize(s string) (string, bool) {
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}

// NormalizeAll normalizes every id in ids. It stops at the first invalid id.
func NormalizeAll(ids []string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, ok := Normalize(id)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// New returns a freshly generated identifier.
func New() string {
	return bson.NewObjectID().Hex()
}
