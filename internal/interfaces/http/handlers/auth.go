// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/pkg/auth"
)

// AuthHandler handles the sign-in flag. There is no credential store:
// signing in simply issues a session token, mirroring the dashboard's
// demo login.
type AuthHandler struct {
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	sessionID := uuid.New().String()

	token, err := h.jwtManager.GenerateSessionToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"data": gin.H{
			"token":      token,
			"session_id": sessionID,
			"expires_in": int(h.config.JWT.SessionExpiry.Seconds()),
		},
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout is
// acknowledged and the client discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}

// GetSession handles GET /auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	sessionID, ok := c.Get("session_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session active",
		"data": gin.H{
			"session_id": sessionID,
		},
	})
}
