package store

import (
	"context"
	"fmt"
	"time"

	"taskapi/model"
)

// recentActivityLimit caps the dashboard's recent-activity feed.
const recentActivityLimit = 10

// GetDashboard computes a read-only snapshot for one caller: the owned
// project list, per-status and overdue task counts, the unscoped
// assigned-to-me counter, a priority histogram, and the recent activity
// feed. The counts run as independent queries, so concurrent mutations
// may be observed mid-aggregation; "now" is evaluated once per request.
func (s *Store) GetDashboard(ctx context.Context, ownerID string, now time.Time) (*model.Dashboard, error) {
	projects, err := s.ownedProjectSummaries(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{Projects: projects}
	dashboard.Summary.TotalProjects = len(projects)

	statusCounts, err := s.countsBy(ctx, "status", ownerID)
	if err != nil {
		return nil, err
	}
	dashboard.Summary.PendingTasks = statusCounts[model.StatusPending]
	dashboard.Summary.InProgressTasks = statusCounts[model.StatusInProgress]
	dashboard.Summary.CompletedTasks = statusCounts[model.StatusCompleted]
	for _, n := range statusCounts {
		dashboard.Summary.TotalTasks += n
	}

	err = s.db.GetContext(ctx, &dashboard.Summary.OverdueTasks, `
		SELECT COUNT(*) FROM tasks
		WHERE `+ownedTaskPredicate+`
		AND due_date IS NOT NULL AND due_date < ? AND status != ?`,
		ownerID, now.UTC(), model.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting overdue tasks: %w", err)
	}

	// Deliberately not ownership scoped: tasks assigned to the caller
	// in someone else's project still count.
	err = s.db.GetContext(ctx, &dashboard.Summary.AssignedToMe,
		"SELECT COUNT(*) FROM tasks WHERE assignee_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("counting assigned tasks: %w", err)
	}

	priorityCounts, err := s.countsBy(ctx, "priority", ownerID)
	if err != nil {
		return nil, err
	}
	dashboard.PriorityStats = model.PriorityStats{
		High:   priorityCounts[model.PriorityHigh],
		Medium: priorityCounts[model.PriorityMedium],
		Low:    priorityCounts[model.PriorityLow],
	}

	recent, err := s.GetRecentActivity(ctx, ownerID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	dashboard.RecentActivity = recent

	return dashboard, nil
}

// ownedProjectSummaries lists the caller's projects as id/name pairs.
func (s *Store) ownedProjectSummaries(ctx context.Context, ownerID string) ([]model.ProjectSummary, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name FROM projects WHERE owner_id = ? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying owned projects: %w", err)
	}
	defer rows.Close()

	var projects []model.ProjectSummary
	for rows.Next() {
		var p model.ProjectSummary
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("scanning project summary: %w", err)
		}
		projects = append(projects, p)
	}
	if projects == nil {
		projects = []model.ProjectSummary{}
	}
	return projects, rows.Err()
}

// countsBy groups the caller's in-scope tasks by the given column.
// column is one of the fixed enum columns, never user input.
func (s *Store) countsBy(ctx context.Context, column, ownerID string) (map[string]int, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+column+", COUNT(*) FROM tasks WHERE "+ownedTaskPredicate+" GROUP BY "+column,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("counting tasks by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", column, err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}
