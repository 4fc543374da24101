// internal/interfaces/http/handlers/orders.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/orders"
)

// OrderHandler handles the order table endpoints
type OrderHandler struct {
	orderService *orders.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *dataset.Store) *OrderHandler {
	return &OrderHandler{
		orderService: orders.NewService(store),
	}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var req orders.ListRequest

	// Bind query parameters
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	// Set default values
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.orderService.List(&req),
	})
}
