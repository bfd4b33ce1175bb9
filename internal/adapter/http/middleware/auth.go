package middleware

import (
	"net/http"
	"strings"

	"rentora/internal/infrastructure/auth"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

// OwnerIDKey is where the authenticated owner's ID lands on the gin context.
const OwnerIDKey = "owner_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Auth validates the Bearer token and stores the owner ID for handlers.
// Every entity read and write downstream is scoped by that ID.
func Auth(jwtUtil *auth.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := jwtUtil.ValidateToken(token)
		if err != nil || claims.UserID == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(OwnerIDKey, claims.UserID)
		c.Next()
	}
}

// OwnerID reads the authenticated owner's ID set by Auth.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}
