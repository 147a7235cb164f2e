package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskapi/model"
)

// CreateUser inserts a new user. The password must already be hashed by
// the caller. Returns ErrEmailTaken when the email is registered.
func (s *Store) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.CreatedAt = time.Now().UTC()

	var existing int
	err := s.db.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM users WHERE email = ?", user.Email)
	if err != nil {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}
	if existing > 0 {
		return nil, ErrEmailTaken
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.Email, user.Password, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, including the password hash
// for credential verification.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT id, name, email, password, created_at FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID. This lookup is not ownership
// scoped: any registered user is a valid task assignee.
func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT id, name, email, password, created_at FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return &user, nil
}
