// Package auth signs and verifies the bearer credentials issued at login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a verified credential carries. It is used only for the
// password-change operation; there is no per-row ownership model.
type Identity struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type JWT struct {
	key []byte
	ttl time.Duration
}

func New(secret string, ttl time.Duration) (*JWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}
	return &JWT{key: []byte(secret), ttl: ttl}, nil
}

// Sign issues an HS256 token for the identity, expiring after the
// configured TTL.
func (j *JWT) Sign(id Identity) (string, error) {
	claims := jwt.MapClaims{
		"id":    id.UserID,
		"email": id.Email,
		"role":  id.Role,
		"exp":   time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", fmt.Errorf("sign token failed: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and expiry and maps the claims back
// onto an Identity.
func (j *JWT) Parse(tokenString string) (*Identity, error) {
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id := &Identity{}
	if v, ok := claims["id"].(float64); ok {
		id.UserID = uint(v)
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}
	if id.UserID == 0 {
		return nil, errors.New("token carries no identity")
	}

	return id, nil
}
