package project

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/dto"
	"taskapi/middleware"
	"taskapi/model"
	"taskapi/store"
)

func ProjectController(router *gin.Engine, s *store.Store) {
	routes := router.Group("/projects", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, s)
		})
		routes.GET("", func(c *gin.Context) {
			GetProjects(c, s)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetProject(c, s)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateProject(c, s)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, s)
		})
	}
}

func CreateProject(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	project, err := s.CreateProject(c.Request.Context(), model.Project{
		Name:        request.Name,
		Description: request.Description,
		OwnerID:     userId,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

func GetProjects(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	projects, err := s.GetProjects(c.Request.Context(), userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func GetProject(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	project, err := s.GetProject(c.Request.Context(), c.Param("id"), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func UpdateProject(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	var request dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	project, err := s.UpdateProject(c.Request.Context(), c.Param("id"), userId, request.Name, request.Description)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

func DeleteProject(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	err := s.DeleteProject(c.Request.Context(), c.Param("id"), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
