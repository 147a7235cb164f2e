package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskapi/model"
	"taskapi/tests/testutil"
)

func TestDashboardEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, dashboard.Summary.TotalProjects)
	assert.Equal(t, 0, dashboard.Summary.TotalTasks)
	assert.Equal(t, model.PriorityStats{}, dashboard.PriorityStats)
	assert.NotNil(t, dashboard.Projects)
	assert.Empty(t, dashboard.Projects)
	assert.NotNil(t, dashboard.RecentActivity)
	assert.Empty(t, dashboard.RecentActivity)
}

func TestDashboardSingleHighPriorityTask(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	project := createProject(t, s, alice.UserID, "P1")
	_, err := s.CreateTask(ctx, alice.UserID, model.Task{
		ProjectID: project.ProjectID,
		Title:     "T1",
		Priority:  model.PriorityHigh,
	})
	require.NoError(t, err)

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.Summary.TotalProjects)
	assert.Equal(t, 1, dashboard.Summary.TotalTasks)
	assert.Equal(t, 1, dashboard.Summary.PendingTasks)
	assert.Equal(t, 0, dashboard.Summary.OverdueTasks)
	assert.Equal(t, model.PriorityStats{High: 1, Medium: 0, Low: 0}, dashboard.PriorityStats)
	require.Len(t, dashboard.Projects, 1)
	assert.Equal(t, "P1", dashboard.Projects[0].Name)
}

func TestDashboardPriorityStatsSumToTotal(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	project := createProject(t, s, alice.UserID, "P")

	priorities := []string{
		model.PriorityHigh, model.PriorityHigh,
		model.PriorityMedium,
		model.PriorityLow, model.PriorityLow, model.PriorityLow,
	}
	for i, p := range priorities {
		_, err := s.CreateTask(ctx, alice.UserID, model.Task{
			ProjectID: project.ProjectID,
			Title:     fmt.Sprintf("task %d", i),
			Priority:  p,
		})
		require.NoError(t, err)
	}

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)

	stats := dashboard.PriorityStats
	assert.Equal(t, 2, stats.High)
	assert.Equal(t, 1, stats.Medium)
	assert.Equal(t, 3, stats.Low)
	assert.Equal(t, dashboard.Summary.TotalTasks, stats.High+stats.Medium+stats.Low)
}

func TestDashboardOverdueTracking(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	project := createProject(t, s, alice.UserID, "P")

	yesterday := time.Now().Add(-24 * time.Hour)
	task, err := s.CreateTask(ctx, alice.UserID, model.Task{
		ProjectID: project.ProjectID,
		Title:     "Late",
		DueDate:   &yesterday,
	})
	require.NoError(t, err)

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.Summary.OverdueTasks)

	// Completion removes it from the overdue count at once.
	_, err = s.CompleteTask(ctx, task.TaskID, alice.UserID)
	require.NoError(t, err)

	dashboard, err = s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, dashboard.Summary.OverdueTasks)
	assert.Equal(t, 1, dashboard.Summary.CompletedTasks)
}

func TestDashboardFutureDueDateNotOverdue(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	project := createProject(t, s, alice.UserID, "P")

	tomorrow := time.Now().Add(24 * time.Hour)
	_, err := s.CreateTask(ctx, alice.UserID, model.Task{
		ProjectID: project.ProjectID,
		Title:     "On time",
		DueDate:   &tomorrow,
	})
	require.NoError(t, err)

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, dashboard.Summary.OverdueTasks)
}

func TestDashboardAssignedToMeIgnoresOwnership(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	bob := createUser(t, s, "Bob", "bob@example.com")
	bobsProject := createProject(t, s, bob.UserID, "Bob's project")

	// Bob assigns a task in his own project to Alice.
	_, err := s.CreateTask(ctx, bob.UserID, model.Task{
		ProjectID:  bobsProject.ProjectID,
		Title:      "For Alice",
		AssigneeID: &alice.UserID,
	})
	require.NoError(t, err)

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)

	// Alice owns no projects, yet the assignment still counts.
	assert.Equal(t, 0, dashboard.Summary.TotalProjects)
	assert.Equal(t, 0, dashboard.Summary.TotalTasks)
	assert.Equal(t, 1, dashboard.Summary.AssignedToMe)
}

func TestDashboardStatusCounts(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	project := createProject(t, s, alice.UserID, "P")

	statuses := []string{
		model.StatusPending, model.StatusPending,
		model.StatusInProgress,
		model.StatusCompleted, model.StatusCompleted, model.StatusCompleted,
	}
	for i, status := range statuses {
		_, err := s.CreateTask(ctx, alice.UserID, model.Task{
			ProjectID: project.ProjectID,
			Title:     fmt.Sprintf("task %d", i),
			Status:    status,
		})
		require.NoError(t, err)
	}

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 6, dashboard.Summary.TotalTasks)
	assert.Equal(t, 2, dashboard.Summary.PendingTasks)
	assert.Equal(t, 1, dashboard.Summary.InProgressTasks)
	assert.Equal(t, 3, dashboard.Summary.CompletedTasks)
}

func TestDashboardRecentActivityScopedAndCapped(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	alice := createUser(t, s, "Alice", "alice@example.com")
	bob := createUser(t, s, "Bob", "bob@example.com")
	alicesProject := createProject(t, s, alice.UserID, "A")
	bobsProject := createProject(t, s, bob.UserID, "B")

	task, err := s.CreateTask(ctx, alice.UserID, model.Task{
		ProjectID: alicesProject.ProjectID,
		Title:     "Busy task",
	})
	require.NoError(t, err)
	bobsTask, err := s.CreateTask(ctx, bob.UserID, model.Task{
		ProjectID: bobsProject.ProjectID,
		Title:     "Bob's task",
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateActivity(ctx, bob.UserID, bobsTask.TaskID, model.ActionCreated))

	for i := 0; i < 12; i++ {
		require.NoError(t, s.CreateActivity(ctx, alice.UserID, task.TaskID, model.ActionUpdated))
	}

	dashboard, err := s.GetDashboard(ctx, alice.UserID, time.Now())
	require.NoError(t, err)

	// Capped at 10 and never includes activity from foreign projects.
	require.Len(t, dashboard.RecentActivity, 10)
	for _, entry := range dashboard.RecentActivity {
		assert.Equal(t, task.TaskID, entry.TaskID)
		require.NotNil(t, entry.User)
		require.NotNil(t, entry.Task)
		assert.Equal(t, "Busy task", entry.Task.Title)
	}
}
