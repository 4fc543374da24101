// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/retail-insights/internal/dataset"
)

// Item is one cart line: a snapshot of the product at add time plus the
// chosen quantity.
type Item struct {
	Product  dataset.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds a session's items keyed by product id.
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     map[int64]Item `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Totals are the derived cart figures shown in the header badge and the
// cart page.
type Totals struct {
	DistinctItems int     `json:"distinct_items"`
	TotalQuantity int     `json:"total_quantity"`
	TotalPrice    float64 `json:"total_price"`
}

// NewCart creates a new empty cart for a session
func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     make(map[int64]Item),
	}
}

// Totals derives the distinct item count, total quantity, and total
// price across all lines.
func (c *Cart) Totals() Totals {
	t := Totals{DistinctItems: len(c.Items)}
	for _, item := range c.Items {
		t.TotalQuantity += item.Quantity
		t.TotalPrice += item.Product.SellingPrice * float64(item.Quantity)
	}
	return t
}
