package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-registry-api/internal/infrastructure/jwt"
	"user-registry-api/internal/interface/api/rest/dto/apierr"
)

const (
	CtxCallerRole = "callerRole"
	CtxCallerID   = "callerID"
)

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierr.New(http.StatusUnauthorized, msg),
	)
}

// AuthMiddleware requires a valid bearer token. A nil service lets every request through.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtService == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing Authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			unauthorized(c, "invalid token format")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(CtxCallerRole, claims.Role)
		c.Set(CtxCallerID, claims.Subject)

		c.Next()
	}
}
