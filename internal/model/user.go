package model

import "time"

// User is an account identified by a normalized email address.
// Only the bcrypt hash of the password is ever stored.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"size:255"`
	CreatedAt    time.Time
}
