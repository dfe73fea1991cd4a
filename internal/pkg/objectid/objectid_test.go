package objectid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "seed folder id", id: "111111111111111111111101", want: true},
		{name: "missing record id", id: "0000000000000000000000ee", want: true},
		{name: "upper case hex", id: "0000000000000000000000EE", want: true},
		{name: "short word", id: "badId", want: false},
		{name: "non hex letters", id: "uugghhhh", want: false},
		{name: "empty", id: "", want: false},
		{name: "23 chars", id: "11111111111111111111110", want: false},
		{name: "25 chars", id: "1111111111111111111111011", want: false},
		{name: "24 chars with g", id: "11111111111111111111110g", want: false},
		{name: "12 byte string", id: "abcdefghijkl", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.id))
		})
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize("0000000000000000000000EE")
	assert.True(t, ok)
	assert.Equal(t, "0000000000000000000000ee", got)

	_, ok = Normalize("badId")
	assert.False(t, ok)
}

func TestNormalizeAll(t *testing.T) {
	got, ok := NormalizeAll([]string{"222222222222222222222200", "22222222222222222222220A"})
	assert.True(t, ok)
	assert.Equal(t, []string{"222222222222222222222200", "22222222222222222222220a"}, got)

	_, ok = NormalizeAll([]string{"222222222222222222222200", "nope"})
	assert.False(t, ok)

	got, ok = NormalizeAll(nil)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestNew_IsValidAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		assert.True(t, IsValid(id))
		assert.Len(t, id, 24)
		assert.Equal(t, strings.ToLower(id), id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func testHexOfLength24IsValid(t *rapid.T) {
	id := rapid.StringMatching(`[0-9a-fA-F]{24}`).Draw(t, "id")
	if !IsValid(id) {
		t.Fatalf("expected %q to be valid", id)
	}
	n, ok := Normalize(id)
	if !ok || n != strings.ToLower(id) {
		t.Fatalf("Normalize(%q) = %q, %v", id, n, ok)
	}
}

func TestHexOfLength24IsValid(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testHexOfLength24IsValid)
}

func testOtherLengthsAreInvalid(t *rapid.T) {
	id := rapid.StringMatching(`[0-9a-f]{0,40}`).
		Filter(func(s string) bool { return len(s) != 24 }).
		Draw(t, "id")
	if IsValid(id) {
		t.Fatalf("expected %q to be invalid", id)
	}
}

func TestOtherLengthsAreInvalid(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testOtherLengthsAreInvalid)
}
