// internal/interfaces/http/middleware/cart_session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionHeader carries the storefront cart session id.
const CartSessionHeader = "X-Cart-Session"

// CartSession ensures every storefront request has a cart session id.
// A missing header gets a fresh uuid, echoed back so the client can
// persist it.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set("cart_session_id", sessionID)
		c.Header(CartSessionHeader, sessionID)

		c.Next()
	}
}

// GetCartSessionFromContext extracts the cart session id from gin context
func GetCartSessionFromContext(c *gin.Context) string {
	sessionID, exists := c.Get("cart_session_id")
	if !exists {
		return ""
	}
	return sessionID.(string)
}
