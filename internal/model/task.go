package model

import "time"

// Task priorities.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Task is a single tracked item owned by one user. CompletedAt is non-nil
// exactly when IsDone is true; the transition lives in service, not here.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index:idx_task_user_done"`
	CategoryID  *uint      `gorm:"index"`
	Title       string     `gorm:"size:200"`
	Description string     `gorm:"size:5000"`
	Deadline    *time.Time `gorm:"index"`
	Priority    int        `gorm:"default:2"`
	IsDone      bool       `gorm:"default:false;index:idx_task_user_done"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriorityLabel returns a human-readable priority name for views.
func (t Task) PriorityLabel() string {
	switch t.Priority {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}
