package model

import "time"

type User struct {
	UserID    string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary is the denormalized owner/assignee block embedded in
// project and task responses.
type UserSummary struct {
	UserID string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Email  string `json:"email" db:"email"`
}

// ActorSummary identifies the acting user on an activity entry.
type ActorSummary struct {
	UserID string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
}
