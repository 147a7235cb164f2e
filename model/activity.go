package model

import "time"

// Activity actions. One entry is appended per significant task mutation
// and never updated afterwards.
const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionAssigned   = "assigned"
	ActionUnassigned = "unassigned"
	ActionCompleted  = "completed"
)

type ActivityLog struct {
	ActivityID string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	TaskID     string    `json:"taskId" db:"task_id"`
	Action     string    `json:"action" db:"action"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	User *ActorSummary `json:"user,omitempty"`
	Task *TaskSummary  `json:"task,omitempty"`
}
