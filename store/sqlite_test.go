package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskapi/model"
)

// Pragmas only apply to the connection they run on, so they ride on the
// DSN. Pinning the startup connection forces the delete onto a freshly
// opened one, which must still enforce foreign keys for the cascade.
func TestDeleteProjectCascadesOnFreshConnection(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	alice, err := s.CreateUser(ctx, model.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hash",
	})
	require.NoError(t, err)
	project, err := s.CreateProject(ctx, model.Project{Name: "P", OwnerID: alice.UserID})
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, alice.UserID, model.Task{
		ProjectID: project.ProjectID,
		Title:     "T",
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateActivity(ctx, alice.UserID, task.TaskID, model.ActionCreated))

	conn, err := s.db.Connx(ctx)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, s.DeleteProject(ctx, project.ProjectID, alice.UserID))

	var count int
	require.NoError(t, s.db.Get(&count,
		"SELECT COUNT(*) FROM tasks WHERE project_id = ?", project.ProjectID))
	assert.Zero(t, count, "tasks must go with their project")
	require.NoError(t, s.db.Get(&count,
		"SELECT COUNT(*) FROM activity_logs WHERE task_id = ?", task.TaskID))
	assert.Zero(t, count, "activity must go with its task")
}
