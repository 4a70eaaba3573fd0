package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SandeshLive/Sandesh/internal/pkg/env"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// GenerateAdminToken signs a bearer token for an admin account. The subject
// is the account ID; expiry comes from JWT_EXPIRES_IN (Go duration, default
// 168h = 7 days).
func GenerateAdminToken(adminID uint, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not configured")
	}

	expiry := 168 * time.Hour
	if raw := env.GetEnv("JWT_EXPIRES_IN", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			expiry = d
		}
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(adminID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAdminToken verifies a bearer token and returns the admin ID it was
// issued for.
func ParseAdminToken(tokenString, secret string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return 0, ErrTokenInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return uint(id), nil
}
