package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskapi/model"
)

// TaskFilter narrows GetTasks results. Filters apply as an intersection
// after the ownership scope.
type TaskFilter struct {
	ProjectID  *string
	Status     *string
	AssigneeID *string
}

// TaskPatch carries the fields of a general task update. Nil fields are
// left unchanged, except DueDate: an update that carries no due date
// clears the stored one, so this is the only way to remove a deadline.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// ownedTaskPredicate resolves a task's owner through its project, so a
// task is visible only to the owner of the project it belongs to.
const ownedTaskPredicate = "project_id IN (SELECT id FROM projects WHERE owner_id = ?)"

// CreateTask inserts a task under one of ownerID's projects. The target
// project is resolved with the same ownership predicate as reads, so a
// foreign or absent project yields ErrNotFound and no task is created.
func (s *Store) CreateTask(ctx context.Context, ownerID string, task model.Task) (*model.Task, error) {
	var owned int
	err := s.db.GetContext(ctx, &owned,
		"SELECT COUNT(*) FROM projects WHERE id = ? AND owner_id = ?",
		task.ProjectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("checking project ownership: %w", err)
	}
	if owned == 0 {
		return nil, ErrNotFound
	}

	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	var dueDate *time.Time
	if task.DueDate != nil {
		utc := task.DueDate.UTC()
		dueDate = &utc
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, title, description, status, priority, due_date, assignee_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.TaskID, task.ProjectID, task.Title, task.Description,
		task.Status, task.Priority, dueDate, task.AssigneeID,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return s.getTask(ctx, task.TaskID, ownerID)
}

// GetTasks retrieves every task in ownerID's owned scope, newest first,
// optionally narrowed by project, status, and assignee.
func (s *Store) GetTasks(ctx context.Context, ownerID string, filter TaskFilter) ([]model.Task, error) {
	conditions := []string{"p.owner_id = ?"}
	args := []interface{}{ownerID}

	if filter.ProjectID != nil {
		conditions = append(conditions, "t.project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.AssigneeID != nil {
		conditions = append(conditions, "t.assignee_id = ?")
		args = append(args, *filter.AssigneeID)
	}

	query := taskSelect + " WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY t.created_at DESC"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanJoinedTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// GetTask retrieves a single task in ownerID's owned scope together with
// its activity log, newest entries first.
func (s *Store) GetTask(ctx context.Context, id, ownerID string) (*model.Task, error) {
	task, err := s.getTask(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	logs, err := s.GetTaskActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	task.ActivityLogs = logs
	return task, nil
}

// UpdateTask applies a patch to an owned task and returns the updated
// record. Nil patch fields are left as they are apart from the due
// date, which is always written.
func (s *Store) UpdateTask(ctx context.Context, id, ownerID string, patch TaskPatch) (*model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, patch.DueDate.UTC())
	} else {
		sets = append(sets, "due_date = NULL")
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") +
		" WHERE id = ? AND " + ownedTaskPredicate
	args = append(args, id, ownerID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.getTask(ctx, id, ownerID)
}

// AssignTask sets or clears the assignee of an owned task. Assignee
// existence is validated by the caller; any registered user may be an
// assignee regardless of project ownership.
func (s *Store) AssignTask(ctx context.Context, id, ownerID string, assigneeID *string) (*model.Task, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET assignee_id = ?, updated_at = ? WHERE id = ? AND "+ownedTaskPredicate,
		assigneeID, time.Now().UTC(), id, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("assigning task %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("assigning task %s: %w", id, err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.getTask(ctx, id, ownerID)
}

// CompleteTask marks an owned task as completed.
func (s *Store) CompleteTask(ctx context.Context, id, ownerID string) (*model.Task, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ? AND "+ownedTaskPredicate,
		model.StatusCompleted, time.Now().UTC(), id, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("completing task %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("completing task %s: %w", id, err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.getTask(ctx, id, ownerID)
}

// DeleteTask removes an owned task; its activity entries go with it.
func (s *Store) DeleteTask(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND "+ownedTaskPredicate, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// taskSelect joins each task with its project and optional assignee so
// responses can carry the denormalized summaries in one query.
const taskSelect = `
	SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
	       t.due_date, t.assignee_id, t.created_at, t.updated_at,
	       p.name, u.name, u.email
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN users u ON u.id = t.assignee_id`

// getTask retrieves a single owned task with its project and assignee
// summaries but without activity entries.
func (s *Store) getTask(ctx context.Context, id, ownerID string) (*model.Task, error) {
	rows, err := s.db.QueryxContext(ctx,
		taskSelect+" WHERE t.id = ? AND p.owner_id = ?", id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	task, err := scanJoinedTask(rows)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// listProjectTasks retrieves the tasks of a single project with assignee
// summaries. Ownership of the project is the caller's concern.
func (s *Store) listProjectTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	rows, err := s.db.QueryxContext(ctx,
		taskSelect+" WHERE t.project_id = ? ORDER BY t.created_at DESC", projectID)
	if err != nil {
		return nil, fmt.Errorf("querying project tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanJoinedTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// scanJoinedTask scans one row of a taskSelect result set.
func scanJoinedTask(rows *sqlx.Rows) (model.Task, error) {
	var (
		task          model.Task
		projectName   string
		assigneeName  sql.NullString
		assigneeEmail sql.NullString
	)

	err := rows.Scan(
		&task.TaskID, &task.ProjectID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.AssigneeID,
		&task.CreatedAt, &task.UpdatedAt,
		&projectName, &assigneeName, &assigneeEmail,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("scanning task row: %w", err)
	}

	task.Project = &model.ProjectSummary{ProjectID: task.ProjectID, Name: projectName}
	if task.AssigneeID != nil {
		task.Assignee = &model.UserSummary{
			UserID: *task.AssigneeID,
			Name:   assigneeName.String,
			Email:  assigneeEmail.String,
		}
	}
	return task, nil
}
