package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxAdminID    = "adminID"
	CtxAdminEmail = "adminEmail"
	CtxAdminName  = "adminName"
)

// AuthMiddleware gates a route group behind a bearer token. The token must
// verify and its subject must still exist as an admin account.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		admin, err := auth.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(CtxAdminID, admin.ID)
		c.Set(CtxAdminEmail, admin.Email)
		c.Set(CtxAdminName, admin.Name)

		c.Next()
	}
}
