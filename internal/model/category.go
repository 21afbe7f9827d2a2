package model

import "time"

// Category groups tasks by area (work, health, study, etc.).
// A user cannot own two categories with the same name.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_user_category_name,unique"`
	Name      string `gorm:"size:100;index:idx_user_category_name,unique"`
	CreatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:CategoryID"`
}
