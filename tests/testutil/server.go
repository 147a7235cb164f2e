package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"taskapi/connection"
	"taskapi/model"
	"taskapi/services"
	"taskapi/store"
)

// NewTestServer assembles the full router over a throwaway store, with
// a fixed JWT secret for the duration of the test.
func NewTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	s := NewTestStore(t)
	return connection.NewRouter(s), s
}

// CreateUser registers a user directly against the store and returns it
// together with a valid bearer token.
func CreateUser(t *testing.T, s *store.Store, name, email string) (*model.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	user, err := s.CreateUser(context.Background(), model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}

	token, err := services.CreateAccessToken(user.UserID)
	if err != nil {
		t.Fatalf("creating token for %s: %v", email, err)
	}

	return user, token
}

// DoJSON performs a JSON request against the router. An empty token
// leaves the Authorization header unset.
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a recorded JSON response body.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}
