package middleware

import (
	"net/http"

	"freshmart_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que le token porte le rôle admin. À chaîner
// après AuthRequired, qui pose le rôle dans le context.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}
