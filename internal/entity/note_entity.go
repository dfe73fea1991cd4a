package entity

import "time"

type Note struct {
	Id        string
	Title     string
	Content   *string
	FolderId  *string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteChanges is a partial update. Title is applied when non-nil; Content and
// FolderId are applied when their Set flag is true, nil meaning null.
type NoteChanges struct {
	Title       *string
	SetContent  bool
	Content     *string
	SetFolderId bool
	FolderId    *string
}

// Apply copies the changes onto n.
func (c NoteChanges) Apply(n *Note) {
	if c.Title != nil {
		n.Title = *c.Title
	}
	if c.SetContent {
		n.Content = c.Content
	}
	if c.SetFolderId {
		n.FolderId = c.FolderId
	}
}
