package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskapi/middleware"
	"taskapi/model"
	"taskapi/services"
)

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": c.MustGet("userId")})
	})
	return router
}

func do(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMissingHeader(t *testing.T) {
	router := newProtectedRouter(t)

	w := do(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedScheme(t *testing.T) {
	router := newProtectedRouter(t)

	w := do(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidToken(t *testing.T) {
	router := newProtectedRouter(t)

	w := do(router, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExpiredToken(t *testing.T) {
	router := newProtectedRouter(t)

	claims := &model.AccessClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := do(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWrongSecret(t *testing.T) {
	router := newProtectedRouter(t)

	claims := &model.AccessClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := do(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidTokenResolvesIdentity(t *testing.T) {
	router := newProtectedRouter(t)

	token, err := services.CreateAccessToken("user-42")
	require.NoError(t, err)

	w := do(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}
