package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	in := New(FolderDeleted, map[string]interface{}{"id": "111111111111111111111100", "notesDeleted": 3})

	raw, err := Encode(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"folder.deleted"`)

	out, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, FolderDeleted, out.EventType())
	assert.Equal(t, "111111111111111111111100", out.Payload()["id"])
	// JSON numbers come back as float64
	assert.Equal(t, float64(3), out.Payload()["notesDeleted"])
	assert.True(t, in.Timestamp().Equal(out.Timestamp()))
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)
}

func TestNew_NilDataIsEmpty(t *testing.T) {
	e := New(TagCreated, nil)
	assert.NotNil(t, e.Payload())
}
