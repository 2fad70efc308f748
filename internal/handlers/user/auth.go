package user

import (
	"errors"
	"log"
	"net/http"

	"freshmart_back_end/internal/auth"
	"freshmart_back_end/internal/middleware"
	"freshmart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *auth.Registry
}

// Register crée un compte client (aucun backend réel : tout est en mémoire)
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	u, err := h.Users.Register(input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de compte"})
		}
		return
	}

	token, err := utils.GenerateJWT(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// Login applique les règles simulées (admin en dur, client auto-provisionné)
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	u, err := h.Users.Login(input.Email, input.Password)
	if err != nil {
		middleware.RecordFailedLogin(input.Email)
		log.Printf("❌ Échec de connexion pour %s", input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}
	middleware.ResetLoginAttempts(input.Email)

	token, err := utils.GenerateJWT(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Connexion de %s (%s)", u.Email, u.Role)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// Me renvoie l'identité portée par le token
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString("user_id"),
		"email":   c.GetString("email"),
		"name":    c.GetString("name"),
		"role":    c.GetString("role"),
	})
}
