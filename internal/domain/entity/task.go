package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task is a gamification challenge assigned to a user.
type Task struct {
	Base
	UserID      uuid.UUID   `json:"user" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
	Rewards     TaskRewards `json:"rewards"`
	Status      string      `json:"status" validate:"oneof=pending completed"`
	CompletedAt *time.Time  `json:"completedAt"` // Set iff Status is completed.
}

// TaskRewards are granted when a task completes.
type TaskRewards struct {
	Points         int `json:"points" validate:"gte=0"`
	DiscountPoints int `json:"discountPoints" validate:"gte=0"`
}

// Kind implements Record.
func (t *Task) Kind() Kind { return KindTask }

// References implements Record.
func (t *Task) References() []Reference {
	return refs("user", KindUser, t.UserID)
}

// Clone implements Record.
func (t *Task) Clone() Record {
	cp := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		cp.CompletedAt = &at
	}

	return &cp
}

// Complete marks the task completed at the given time.
func (t *Task) Complete(at time.Time) {
	t.Status = TaskStatusCompleted
	t.CompletedAt = &at
}

// Consistent reports whether CompletedAt is set exactly when the task is completed.
func (t *Task) Consistent() bool {
	return (t.Status == TaskStatusCompleted) == (t.CompletedAt != nil)
}
