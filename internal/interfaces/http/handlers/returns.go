// internal/interfaces/http/handlers/returns.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/analytics"
)

// ReturnHandler handles the returns analytics endpoint
type ReturnHandler struct {
	analyticsService *analytics.Service
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(store *dataset.Store, cfg *config.Config) *ReturnHandler {
	return &ReturnHandler{
		analyticsService: analytics.NewService(store, cfg),
	}
}

// GetReturnStats handles GET /returns
func (h *ReturnHandler) GetReturnStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Return statistics retrieved successfully",
		"data":    h.analyticsService.GetReturnStats(),
	})
}
