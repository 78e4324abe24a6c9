package models

import "time"

// Game represents a reviewed game. Rows are created lazily the first time a
// review mentions a name that is not stored yet, and are never updated or
// deleted by the review workflow.
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Genre       *string `gorm:"size:50"`
	ReleaseYear *int
	CreatedAt   time.Time
}
