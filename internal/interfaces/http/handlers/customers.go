// internal/interfaces/http/handlers/customers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/analytics"
)

// customerPageSize caps the customer table at the highest spenders.
const customerPageSize = 50

// CustomerHandler handles the customer spending endpoints
type CustomerHandler struct {
	analyticsService *analytics.Service
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(store *dataset.Store, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		analyticsService: analytics.NewService(store, cfg),
	}
}

// GetCustomers handles GET /customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	spends := h.analyticsService.GetCustomerSpending(c.Query("search"))

	total := len(spends)
	if len(spends) > customerPageSize {
		spends = spends[:customerPageSize]
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data": gin.H{
			"customers": spends,
			"total":     total,
			"shown":     len(spends),
		},
	})
}
