// Package entity defines the domain models for the tasks feature.
package entity

import "time"

// Priority is the urgency level of a task.
type Priority string

// Valid task priorities. PriorityMedium is the default for new tasks.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single to-do item owned by exactly one user.
// The owner is set at creation and never changes; every query against
// tasks filters by both task ID and owner ID.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	Completed   bool       `gorm:"not null;default:false"`
	Priority    Priority   `gorm:"size:10;not null;default:medium"`
	DueDate     *time.Time
	UserID      uint       `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
