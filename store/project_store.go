package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskapi/model"
)

// CreateProject inserts a new project owned by project.OwnerID.
func (s *Store) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if project.ProjectID == "" {
		project.ProjectID = uuid.New().String()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		project.ProjectID, project.Name, project.Description,
		project.OwnerID, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if err := s.attachOwner(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects retrieves all projects owned by ownerID, newest first,
// each with its owner summary and task list.
func (s *Store) GetProjects(ctx context.Context, ownerID string) ([]model.Project, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM projects WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		if err := s.attachOwner(ctx, &projects[i]); err != nil {
			return nil, err
		}
		tasks, err := s.listProjectTasks(ctx, projects[i].ProjectID)
		if err != nil {
			return nil, err
		}
		projects[i].Tasks = tasks
	}

	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// GetProject retrieves a single project by ID, restricted to the owner.
// A project that does not exist and a project owned by someone else both
// yield ErrNotFound.
func (s *Store) GetProject(ctx context.Context, id, ownerID string) (*model.Project, error) {
	var p model.Project
	err := s.db.GetContext(ctx, &p, `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM projects WHERE id = ? AND owner_id = ?`, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}

	if err := s.attachOwner(ctx, &p); err != nil {
		return nil, err
	}
	tasks, err := s.listProjectTasks(ctx, p.ProjectID)
	if err != nil {
		return nil, err
	}
	p.Tasks = tasks
	return &p, nil
}

// UpdateProject updates the name, and optionally the description, of an
// owned project and returns the updated record. A nil description is
// left unchanged.
func (s *Store) UpdateProject(ctx context.Context, id, ownerID, name string, description *string) (*model.Project, error) {
	sets := []string{"name = ?", "updated_at = ?"}
	args := []interface{}{name, time.Now().UTC()}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *description)
	}
	args = append(args, id, ownerID)

	result, err := s.db.ExecContext(ctx,
		"UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id = ? AND owner_id = ?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.GetProject(ctx, id, ownerID)
}

// DeleteProject removes an owned project. The schema cascades the delete
// to the project's tasks and, through them, their activity entries.
func (s *Store) DeleteProject(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// attachOwner fills in the owner summary on a project.
func (s *Store) attachOwner(ctx context.Context, p *model.Project) error {
	var owner model.UserSummary
	err := s.db.GetContext(ctx, &owner,
		"SELECT id, name, email FROM users WHERE id = ?", p.OwnerID)
	if err != nil {
		return fmt.Errorf("getting project owner: %w", err)
	}
	p.Owner = &owner
	return nil
}
