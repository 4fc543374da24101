// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/your-org/retail-insights/internal/dataset"
)

// Service handles cart operations for storefront sessions.
type Service struct {
	carts Store
	data  *dataset.Store
}

// NewService creates a new cart service
func NewService(carts Store, data *dataset.Store) *Service {
	return &Service{
		carts: carts,
		data:  data,
	}
}

// View is the cart plus its derived totals, ready for the handler.
type View struct {
	Cart   *Cart  `json:"cart"`
	Totals Totals `json:"totals"`
}

// Get returns the session's cart with totals.
func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &View{Cart: cart, Totals: cart.Totals()}, nil
}

// AddItem adds a product to the cart. If the product is already in the
// cart its quantity is incremented, otherwise a new line starts at 1.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64) (*View, error) {
	product, ok := s.data.Snapshot().ProductByID()[productID]
	if !ok {
		return nil, fmt.Errorf("product %d not found", productID)
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, exists := cart.Items[productID]
	if exists {
		item.Quantity++
	} else {
		item = Item{Product: product, Quantity: 1}
	}
	cart.Items[productID] = item

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return &View{Cart: cart, Totals: cart.Totals()}, nil
}

// UpdateQuantity sets a line's quantity. Zero removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*View, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, exists := cart.Items[productID]
	if !exists {
		return nil, fmt.Errorf("product %d not in cart", productID)
	}

	if quantity == 0 {
		delete(cart.Items, productID)
	} else {
		item.Quantity = quantity
		cart.Items[productID] = item
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return &View{Cart: cart, Totals: cart.Totals()}, nil
}

// RemoveItem drops a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*View, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, exists := cart.Items[productID]; !exists {
		return nil, fmt.Errorf("product %d not in cart", productID)
	}
	delete(cart.Items, productID)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return &View{Cart: cart, Totals: cart.Totals()}, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

// Checkout finalizes the cart. Without an order pipeline behind it the
// checkout simply reports the totals and clears the cart.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*Totals, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	totals := cart.Totals()
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return &totals, nil
}
