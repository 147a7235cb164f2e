package services

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskapi/model"
)

const defaultExpiryMinutes = 60

// CreateAccessToken mints a signed HS256 bearer token carrying the user
// id. Expiry comes from JWT_EXPIRES_IN (minutes), defaulting to one hour.
func CreateAccessToken(userID string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))

	expiry := defaultExpiryMinutes
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			expiry = minutes
		}
	}

	now := time.Now()
	claims := &model.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "taskapi",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiry) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}
