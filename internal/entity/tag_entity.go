package entity

import "time"

type Tag struct {
	Id        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
