package model

import "time"

type Project struct {
	ProjectID   string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	OwnerID     string    `json:"ownerId" db:"owner_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Owner *UserSummary `json:"owner,omitempty"`
	Tasks []Task       `json:"tasks,omitempty"`
}

// ProjectSummary is the denormalized project block embedded in task
// responses and the dashboard project list.
type ProjectSummary struct {
	ProjectID string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
}
