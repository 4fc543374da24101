// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/domain/cart"
	"github.com/your-org/retail-insights/internal/interfaces/http/middleware"
)

// CartHandler handles storefront cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItemRequest is the add-to-cart payload.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// UpdateItemRequest is the quantity update payload.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cartService.Get(c.Request.Context(), middleware.GetCartSessionFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), middleware.GetCartSessionFromContext(c), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    view,
	})
}

// UpdateItem handles PUT /cart/items/:product_id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.UpdateQuantity(c.Request.Context(), middleware.GetCartSessionFromContext(c), productID, *req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    view,
	})
}

// RemoveItem handles DELETE /cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	view, err := h.cartService.RemoveItem(c.Request.Context(), middleware.GetCartSessionFromContext(c), productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    view,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), middleware.GetCartSessionFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	totals, err := h.cartService.Checkout(c.Request.Context(), middleware.GetCartSessionFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout complete",
		"data":    totals,
	})
}
