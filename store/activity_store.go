package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskapi/model"
)

// CreateActivity appends one immutable activity entry for a task
// mutation performed by userID.
func (s *Store) CreateActivity(ctx context.Context, userID, taskID, action string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_logs (id, user_id, task_id, action, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), userID, taskID, action, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording %s activity for task %s: %w", action, taskID, err)
	}
	return nil
}

// GetTaskActivity retrieves a task's activity entries, newest first,
// each with the acting user's summary.
func (s *Store) GetTaskActivity(ctx context.Context, taskID string) ([]model.ActivityLog, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT a.id, a.user_id, a.task_id, a.action, a.created_at, u.name
		FROM activity_logs a
		JOIN users u ON u.id = a.user_id
		WHERE a.task_id = ?
		ORDER BY a.created_at DESC, a.rowid DESC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("querying task activity: %w", err)
	}
	defer rows.Close()

	var logs []model.ActivityLog
	for rows.Next() {
		var (
			entry    model.ActivityLog
			userName string
		)
		err := rows.Scan(
			&entry.ActivityID, &entry.UserID, &entry.TaskID,
			&entry.Action, &entry.CreatedAt, &userName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		entry.User = &model.ActorSummary{UserID: entry.UserID, Name: userName}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// GetRecentActivity retrieves the most recent activity entries across
// ownerID's owned scope, newest first, denormalized with the acting
// user and affected task. Timestamp ties fall back to insertion order.
func (s *Store) GetRecentActivity(ctx context.Context, ownerID string, limit int) ([]model.ActivityLog, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT a.id, a.user_id, a.task_id, a.action, a.created_at, u.name, t.title
		FROM activity_logs a
		JOIN users u ON u.id = a.user_id
		JOIN tasks t ON t.id = a.task_id
		WHERE t.project_id IN (SELECT id FROM projects WHERE owner_id = ?)
		ORDER BY a.created_at DESC, a.rowid DESC
		LIMIT ?`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent activity: %w", err)
	}
	defer rows.Close()

	var logs []model.ActivityLog
	for rows.Next() {
		var (
			entry     model.ActivityLog
			userName  string
			taskTitle string
		)
		err := rows.Scan(
			&entry.ActivityID, &entry.UserID, &entry.TaskID,
			&entry.Action, &entry.CreatedAt, &userName, &taskTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		entry.User = &model.ActorSummary{UserID: entry.UserID, Name: userName}
		entry.Task = &model.TaskSummary{TaskID: entry.TaskID, Title: taskTitle}
		logs = append(logs, entry)
	}
	if logs == nil {
		logs = []model.ActivityLog{}
	}
	return logs, rows.Err()
}
