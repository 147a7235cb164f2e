package connection

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"taskapi/controller/dashboard"
	"taskapi/controller/project"
	"taskapi/controller/task"
	"taskapi/controller/user"
	"taskapi/store"
)

// NewRouter assembles the gin engine with CORS, the health route, all
// controllers, and the catch-all 404. Tests build routers the same way.
func NewRouter(s *store.Store) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Task Manager API is running"})
	})

	user.UserController(router, s)
	project.ProjectController(router, s)
	task.TaskController(router, s)
	dashboard.DashboardController(router, s)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})

	return router
}

func StartServer() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	s, err := DBConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer s.Close()

	router := NewRouter(s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
