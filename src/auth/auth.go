package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var ErrInvalidToken = errors.New("invalid or expired token")

// User is the authenticated caller identity every core operation consumes.
type User struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Claims struct {
	UserID uint   `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken validates a signed JWT and extracts the caller identity.
func ParseToken(tokenString, secret string) (User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return User{}, ErrInvalidToken
	}

	return User{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: claims.Role,
	}, nil
}
