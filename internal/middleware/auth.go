package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and resolves the authenticated user into the request context. Removed or
// inactive accounts are rejected even when their token is still valid.
func AuthMiddleware(jwtSecret string, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: msg})
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "invalid token"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			logger.Warn("Token subject does not resolve to a user", "user_id", claims.Subject)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "invalid token"})
			return
		}
		if user.Status == domain.UserRemoved || user.Status == domain.UserInactive {
			logger.Warn("Authenticated user is not active", "user_id", user.UserID, "status", user.Status)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "account is not active"})
			return
		}

		// Store the user in the context and enrich the logger
		ctxWithUser := context.WithValue(c.Request.Context(), userCtxKey, user)
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
