package entity

import (
	"time"
)

// Task is a to-do item owned by a single user. Every query against
// tasks is scoped by UserID.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
