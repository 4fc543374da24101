package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/retail-insights/internal/dataset"
)

func date(y int, m time.Month, d int) dataset.Date {
	return dataset.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := dataset.NewStore()
	require.NoError(t, store.Publish(&dataset.Snapshot{
		Orders: []dataset.Order{
			{ID: 1, CustomerID: 1, OrderDate: date(2024, 1, 5), Status: dataset.OrderStatusDelivered, TotalAmount: 100},
			{ID: 2, CustomerID: 2, OrderDate: date(2024, 6, 1), Status: dataset.OrderStatusShipped, TotalAmount: 50},
			{ID: 3, CustomerID: 1, OrderDate: date(2024, 6, 1), Status: dataset.OrderStatusDelivered, TotalAmount: 75},
		},
		Customers: []dataset.Customer{
			{ID: 1, FullName: "Asha Iyer"},
			{ID: 2, FullName: "Rohan Mehta"},
		},
	}, dataset.StatusFullyLoaded))

	return NewService(store)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)

	resp := svc.List(&ListRequest{Page: 1, Limit: 20})
	require.Len(t, resp.Orders, 3)
	// Same-day orders tie-break on id descending.
	assert.Equal(t, int64(3), resp.Orders[0].ID)
	assert.Equal(t, int64(2), resp.Orders[1].ID)
	assert.Equal(t, int64(1), resp.Orders[2].ID)
	assert.Equal(t, "Asha Iyer", resp.Orders[0].CustomerName)
}

func TestListStatusFilterAndSearch(t *testing.T) {
	svc := newTestService(t)

	resp := svc.List(&ListRequest{Status: "Shipped", Page: 1, Limit: 20})
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(2), resp.Orders[0].ID)

	resp = svc.List(&ListRequest{Search: "asha", Page: 1, Limit: 20})
	assert.Len(t, resp.Orders, 2)

	resp = svc.List(&ListRequest{Search: "2", Page: 1, Limit: 20})
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(2), resp.Orders[0].ID)
}

func TestListPagination(t *testing.T) {
	svc := newTestService(t)

	resp := svc.List(&ListRequest{Page: 2, Limit: 2})
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)

	resp = svc.List(&ListRequest{Page: 9, Limit: 2})
	assert.Empty(t, resp.Orders)
}
