package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLogin    *time.Time
}
