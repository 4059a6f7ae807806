package utils

import (
	"github.com/gin-gonic/gin"
)

// UserClaims is the immutable principal resolved from a bearer token
// by the auth middleware and threaded to handlers via the request
// context.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

func (uc *UserClaims) IsAdmin() bool {
	return uc.Role == "admin"
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
