// internal/interfaces/http/handlers/status.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/dataset"
)

// StatusHandler reports the dataset load status so clients can render
// loading and error states.
type StatusHandler struct {
	store *dataset.Store
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(store *dataset.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// GetStatus handles GET /status
func (h *StatusHandler) GetStatus(c *gin.Context) {
	data := gin.H{
		"status":  h.store.Status(),
		"loading": h.store.Loading(),
	}
	if err := h.store.Err(); err != nil {
		data["error"] = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dataset status retrieved successfully",
		"data":    data,
	})
}
