// internal/interfaces/http/handlers/products.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/catalog"
)

// ProductHandler serves the internal product table and the public
// storefront catalog.
type ProductHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *dataset.Store, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalogService: catalog.NewService(store, cfg),
		config:         cfg,
	}
}

func bindListRequest(c *gin.Context) (*catalog.ListRequest, bool) {
	var req catalog.ListRequest

	// Bind query parameters
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return nil, false
	}

	// Set default values
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	return &req, true
}

// GetProducts handles GET /products (internal table view)
func (h *ProductHandler) GetProducts(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalogService.ListProducts(req),
	})
}

// GetCatalog handles GET /catalog (public storefront view)
func (h *ProductHandler) GetCatalog(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data":    h.catalogService.ListCatalog(req),
	})
}
