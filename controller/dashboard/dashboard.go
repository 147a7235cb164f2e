package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskapi/middleware"
	"taskapi/store"
)

func DashboardController(router *gin.Engine, s *store.Store) {
	router.GET("/dashboard", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetDashboard(c, s)
	})
}

func GetDashboard(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	dashboard, err := s.GetDashboard(c.Request.Context(), userId, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
