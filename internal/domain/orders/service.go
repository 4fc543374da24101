// internal/domain/orders/service.go
package orders

import (
	"strconv"

	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/pkg/listops"
)

// Service lists orders for the operations table.
type Service struct {
	store *dataset.Store
}

// NewService creates a new orders service
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// OrderView is an order row joined with the customer's display name.
type OrderView struct {
	dataset.Order
	CustomerName string `json:"customer_name"`
}

// ListRequest carries the order table query parameters.
type ListRequest struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ListResponse is one page of orders, newest first.
type ListResponse struct {
	Orders     []OrderView `json:"orders"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// List returns orders newest first, optionally narrowed by status or a
// search over order id and customer name, then paginated.
func (s *Service) List(req *ListRequest) *ListResponse {
	snap := s.store.Snapshot()

	names := make(map[int64]string, len(snap.Customers))
	for _, c := range snap.Customers {
		names[c.ID] = c.DisplayName()
	}

	views := make([]OrderView, len(snap.Orders))
	for i, o := range snap.Orders {
		views[i] = OrderView{Order: o, CustomerName: names[o.CustomerID]}
	}

	views = listops.Filter(views, func(v OrderView) bool {
		return listops.Matches(string(v.Status), req.Status)
	})
	views = listops.Search(views, req.Search, func(v OrderView) []string {
		return []string{formatID(v.ID), v.CustomerName}
	})

	// Newest first; id breaks same-day ties so pages are stable.
	sorted := listops.SortBy(views, func(a, b OrderView) int {
		if c := listops.Compare(a.OrderDate.Unix(), b.OrderDate.Unix()); c != 0 {
			return c
		}
		return listops.Compare(a.ID, b.ID)
	}, true)

	return &ListResponse{
		Orders:     listops.Paginate(sorted, req.Page, req.Limit),
		Total:      len(sorted),
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: listops.TotalPages(len(sorted), req.Limit),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
