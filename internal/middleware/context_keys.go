package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// userCtxKey is the key used to store the authenticated user in the request context.
const userCtxKey = contextKey("user")

// GetUserFromContext retrieves the authenticated user from the request context.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// GetUserIDFromContext retrieves the authenticated user's ID from the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
