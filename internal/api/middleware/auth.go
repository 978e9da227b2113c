package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/redis"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> header and
// injects the claims into the request context. Revoked tokens are
// rejected through the redis blacklist; a nil rdb disables that check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authentification requise")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "en-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "token invalide ou expiré")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "token révoqué")
				c.Abort()
				return
			}
			// Redis errors degrade to accepting the token.
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth allows the request only when the authenticated role is one
// of allowedRoles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "authentification requise")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "accès refusé")
		c.Abort()
	}
}
