package domain

import "time"

type Photo struct {
	ID        string
	AlbumID   string
	Title     string
	Type      string
	IsStarred bool
	TakenAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
