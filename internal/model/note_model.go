package model

import (
	"time"

	"gorm.io/datatypes"
)

// Note keeps folder and tag references as plain ids. They are not foreign
// keys: a note may point at a folder or tag that no longer exists.
type Note struct {
	Id        string                      `gorm:"type:char(24);primaryKey"`
	Title     string                      `gorm:"type:text;not null"`
	Content   *string                     `gorm:"type:text"`
	FolderId  *string                     `gorm:"type:char(24);index"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime;index"`
}

func (Note) TableName() string {
	return "notes"
}
