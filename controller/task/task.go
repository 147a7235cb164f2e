package task

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"taskapi/dto"
	"taskapi/middleware"
	"taskapi/model"
	"taskapi/store"
)

func TaskController(router *gin.Engine, s *store.Store) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, s)
		})
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, s)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, s)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, s)
		})
		routes.PATCH("/:id/assign", func(c *gin.Context) {
			AssignTask(c, s)
		})
		routes.PATCH("/:id/complete", func(c *gin.Context) {
			CompleteTask(c, s)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, s)
		})
	}
}

func CreateTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	task, err := s.CreateTask(c.Request.Context(), userId, model.Task{
		ProjectID:   request.ProjectID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	recordActivity(c, s, userId, task.TaskID, model.ActionCreated)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}

func GetTasks(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	tasks, err := s.GetTasks(c.Request.Context(), userId, store.TaskFilter{
		ProjectID:  query.ProjectID,
		Status:     query.Status,
		AssigneeID: query.AssigneeID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func GetTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	task, err := s.GetTask(c.Request.Context(), c.Param("id"), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

func UpdateTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	task, err := s.UpdateTask(c.Request.Context(), c.Param("id"), userId, store.TaskPatch{
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	// The general update path logs "updated" even when it sets
	// status=completed; only the dedicated complete endpoint logs
	// "completed".
	recordActivity(c, s, userId, task.TaskID, model.ActionUpdated)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}

func AssignTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var request dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	// Assignee existence is checked without ownership scoping: any
	// registered user can be assigned.
	if request.AssigneeID != nil {
		if _, err := s.GetUserByID(c.Request.Context(), *request.AssigneeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign task"})
			return
		}
	}

	task, err := s.AssignTask(c.Request.Context(), c.Param("id"), userId, request.AssigneeID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign task"})
		return
	}

	action := model.ActionUnassigned
	if request.AssigneeID != nil {
		action = model.ActionAssigned
	}
	recordActivity(c, s, userId, task.TaskID, action)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task assignment updated successfully",
		"task":    task,
	})
}

func CompleteTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	task, err := s.CompleteTask(c.Request.Context(), c.Param("id"), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	recordActivity(c, s, userId, task.TaskID, model.ActionCompleted)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as completed",
		"task":    task,
	})
}

func DeleteTask(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	err := s.DeleteTask(c.Request.Context(), c.Param("id"), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// recordActivity appends an activity entry for a mutation that already
// succeeded. A failed append is logged and never fails the request.
func recordActivity(c *gin.Context, s *store.Store, userID, taskID, action string) {
	if err := s.CreateActivity(c.Request.Context(), userID, taskID, action); err != nil {
		log.Error().Err(err).
			Str("taskId", taskID).
			Str("action", action).
			Msg("failed to record activity")
	}
}
