package model

import "time"

type Tag struct {
	Id        string    `gorm:"type:char(24);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
