// Package security provides JWT, password hashing and identifier
// generation utilities.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken reports a token that failed parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// GenerateAdminToken creates a signed HS256 session token for an admin
// account.
func GenerateAdminToken(adminID int64, username, jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      adminID,
		"username": username,
		"type":     "admin_auth",
		"iat":      time.Now().UTC().Unix(),
		"exp":      time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateJWT validates a JWT token and returns the claims.
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// AdminIDFromClaims extracts the admin account id from session claims.
func AdminIDFromClaims(claims jwt.MapClaims) (int64, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false
	}
	return int64(sub), true
}
