package specification

import (
	"gorm.io/gorm"
)

type ByFolderID struct {
	FolderID string
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// HasTag matches notes whose tag set contains TagID.
type HasTag struct {
	TagID string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tags @> jsonb_build_array(?::text)", s.TagID)
}

// TitleMatches is a case-sensitive regular expression match on the title.
// Pattern is used as given; callers compile it first to reject bad input.
type TitleMatches struct {
	Pattern string
}

func (s TitleMatches) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ~ ?", s.Pattern)
}
