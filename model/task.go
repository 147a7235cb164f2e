package model

import "time"

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	TaskID      string     `json:"id" db:"id"`
	ProjectID   string     `json:"projectId" db:"project_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      string     `json:"status" db:"status"`
	Priority    string     `json:"priority" db:"priority"`
	DueDate     *time.Time `json:"dueDate" db:"due_date"`
	AssigneeID  *string    `json:"assigneeId" db:"assignee_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	Project      *ProjectSummary `json:"project,omitempty"`
	Assignee     *UserSummary    `json:"assignee,omitempty"`
	ActivityLogs []ActivityLog   `json:"activityLogs,omitempty"`
}

// TaskSummary identifies the affected task on an activity entry.
type TaskSummary struct {
	TaskID string `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
}
