package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	ProjectID   string     `json:"projectId" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

type AssignTaskRequest struct {
	AssigneeID *string `json:"assigneeId"`
}

type TaskListQuery struct {
	ProjectID  *string `form:"projectId"`
	Status     *string `form:"status" binding:"omitempty,oneof=pending in_progress completed"`
	AssigneeID *string `form:"assigneeId"`
}
