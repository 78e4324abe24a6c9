package models

import "time"

// Review is one user's rating and feedback for a game.
//
// GameName is denormalized on purpose: the FK is ON DELETE SET NULL, so a
// review keeps its game's name even if the game row disappears. DisplayOrder
// is a dense 1..N sequence in creation order, recomputed after every insert.
type Review struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       *uint     `gorm:"index"`
	GameName     string    `gorm:"size:100;not null"`
	Review       string    `gorm:"type:text;not null"`
	Reviewer     string    `gorm:"size:50;not null"`
	Rating       int       `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"index"`
	DisplayOrder int       `gorm:"index"`

	Game *Game `gorm:"foreignKey:GameID;constraint:OnDelete:SET NULL;"`
}
