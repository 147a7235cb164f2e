package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"taskapi/dto"
	"taskapi/middleware"
	"taskapi/model"
	"taskapi/services"
	"taskapi/store"
)

const bcryptCost = 12

func UserController(router *gin.Engine, s *store.Store) {
	router.POST("/users/register", func(c *gin.Context) {
		Register(c, s)
	})
	router.POST("/users/login", func(c *gin.Context) {
		Login(c, s)
	})
	router.GET("/users/me", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Me(c, s)
	})
}

func Register(c *gin.Context, s *store.Store) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user, err := s.CreateUser(c.Request.Context(), model.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hashedPassword),
	})
	if errors.Is(err, store.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := services.CreateAccessToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func Login(c *gin.Context, s *store.Store) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationErrors(err)})
		return
	}

	// Unknown email and wrong password are indistinguishable on purpose.
	user, err := s.GetUserByEmail(c.Request.Context(), request.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := services.CreateAccessToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func Me(c *gin.Context, s *store.Store) {
	userId := c.MustGet("userId").(string)

	user, err := s.GetUserByID(c.Request.Context(), userId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
