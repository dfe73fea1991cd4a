package nats

import (
	"testing"

	"noteful-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.note.created", Subject(events.NoteCreated))
	assert.Equal(t, "events.tag.deleted", Subject(events.TagDeleted))
}
