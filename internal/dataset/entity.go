// internal/dataset/entity.go
package dataset

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date carried as an ISO string ("2006-01-02") in the
// dataset files. Some exports carry full RFC3339 timestamps, so both
// layouts are accepted. The zero value means "no date".
type Date struct {
	time.Time
}

// UnmarshalJSON parses either a bare ISO date or an RFC3339 timestamp.
// Empty and null values decode to the zero Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("invalid date %q", s)
}

// MarshalJSON renders the date back in the file contract's ISO form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// OrderStatus enumerates the states carried in the orders file.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusReturned   OrderStatus = "Returned"
)

// Product represents one row of the products collection. Field names are
// the file contract and must not change.
type Product struct {
	ID           int64    `json:"product_id"`
	Name         string   `json:"product_name"`
	Brand        string   `json:"product_brand"`
	Category     string   `json:"product_category"`
	Department   string   `json:"product_department"`
	SellingPrice float64  `json:"selling_unit_price"`
	CostPrice    float64  `json:"cost_unit_price"`
	UnitsInStock int      `json:"units_in_stock"`
	IsActive     bool     `json:"is_product_active"`
	Image        string   `json:"product_image,omitempty"`
	Rating       *float64 `json:"product_rating,omitempty"`
}

// Order represents one row of the orders collection.
type Order struct {
	ID          int64       `json:"order_id"`
	CustomerID  int64       `json:"customer_id"`
	OrderDate   Date        `json:"order_date"`
	Status      OrderStatus `json:"order_status"`
	TotalAmount float64     `json:"order_total_amount"`
}

// OrderItem represents one row of the order items collection.
type OrderItem struct {
	ID              int64   `json:"order_item_id"`
	OrderID         int64   `json:"order_id"`
	ProductID       int64   `json:"product_id"`
	OrderedQuantity int     `json:"ordered_quantity"`
	TotalAmount     float64 `json:"total_amount"`
	IsReturned      bool    `json:"is_returned"`
}

// Return represents one row of the order returns collection.
type Return struct {
	OrderID         int64 `json:"order_id"`
	ReturnDate      Date  `json:"return_date"`
	PickupScheduled Date  `json:"pickup_scheduled_date"`
	RefundProcessed Date  `json:"refund_processed_date"`
}

// Customer represents one row of the customers collection.
type Customer struct {
	ID        int64  `json:"customer_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"customer_name"`
	CreatedAt Date   `json:"created_at"`
}

// DisplayName returns the customer's full name, falling back to
// first/last when the export has no precomputed one.
func (c Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Snapshot is one immutable published view of all five collections.
// Consumers must never mutate its slices.
type Snapshot struct {
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Returns    []Return
	Customers  []Customer
}

// ProductByID builds a product lookup map. Built once per request cycle
// instead of linear scans inside the aggregation loops.
func (s *Snapshot) ProductByID() map[int64]Product {
	m := make(map[int64]Product, len(s.Products))
	for _, p := range s.Products {
		m[p.ID] = p
	}
	return m
}
