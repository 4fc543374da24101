package analytics

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

func testProducts() []dataset.Product {
	return []dataset.Product{
		{ID: 1, Name: "Shoe", Brand: "Strider", Category: "Footwear", Department: "Sportswear", CostPrice: 40, IsActive: true},
		{ID: 2, Name: "Tee", Brand: "Loom", Category: "Apparel", Department: "Menswear", CostPrice: 5, IsActive: true},
		{ID: 3, Name: "Jacket", Brand: "Loom", Category: "Apparel", Department: "Outdoors", CostPrice: 60, IsActive: false},
	}
}

func TestComputeSalesStats(t *testing.T) {
	products := testProducts()
	orders := []dataset.Order{
		{ID: 10, OrderDate: date(2024, 1, 5)},
		{ID: 11, OrderDate: date(2024, 2, 9)},
	}
	items := []dataset.OrderItem{
		{ID: 1, OrderID: 10, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100},
		{ID: 2, OrderID: 10, ProductID: 2, OrderedQuantity: 2, TotalAmount: 40},
		{ID: 3, OrderID: 11, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100, IsReturned: true},
		{ID: 4, OrderID: 11, ProductID: 999, OrderedQuantity: 1, TotalAmount: 55}, // no such product
	}

	stats := ComputeSalesStats(products, orders, items)

	// Returned item counted but excluded; orphaned item skipped entirely.
	assert.Equal(t, 1, stats.ReturnedItems)
	assert.InDelta(t, 140.0, stats.Revenue, 1e-9)
	assert.InDelta(t, 50.0, stats.Cost, 1e-9) // 40 + 2*5
	assert.InDelta(t, 90.0, stats.Profit, 1e-9)
	assert.InDelta(t, 90.0/140.0*100, stats.MarginPercent, 1e-9)
	assert.Equal(t, 2, stats.OrderCount)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 1, stats.InactiveProducts)
}

func TestComputeSalesStatsZeroRevenue(t *testing.T) {
	stats := ComputeSalesStats(testProducts(), nil, nil)
	assert.Zero(t, stats.MarginPercent)
	assert.Zero(t, stats.Revenue)
}

func TestProfitTrendsChronologicalAcrossYears(t *testing.T) {
	products := testProducts()
	orders := []dataset.Order{
		{ID: 1, OrderDate: date(2024, 1, 15)},
		{ID: 2, OrderDate: date(2023, 2, 10)},
		{ID: 3, OrderDate: date(2023, 1, 3)},
	}
	items := []dataset.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 2, OrderedQuantity: 1, TotalAmount: 20},
		{ID: 2, OrderID: 2, ProductID: 2, OrderedQuantity: 1, TotalAmount: 20},
		{ID: 3, OrderID: 3, ProductID: 2, OrderedQuantity: 1, TotalAmount: 20},
	}

	trend := ProfitTrends(orders, items, products, false)

	// Sorted by the underlying month, not by label text.
	require.Len(t, trend, 3)
	assert.Equal(t, []string{"Jan 2023", "Feb 2023", "Jan 2024"},
		[]string{trend[0].Label, trend[1].Label, trend[2].Label})
	assert.Equal(t, 1, trend[0].Orders)
	assert.InDelta(t, 15.0, trend[0].Profit, 1e-9)
}

func TestProfitTrendsMonthOnlyLabels(t *testing.T) {
	orders := []dataset.Order{{ID: 1, OrderDate: date(2024, 3, 1)}}
	trend := ProfitTrends(orders, nil, nil, true)
	require.Len(t, trend, 1)
	assert.Equal(t, "Mar", trend[0].Label)
}

func TestTopProducts(t *testing.T) {
	products := testProducts()
	items := []dataset.OrderItem{
		{ID: 1, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100}, // profit 60
		{ID: 2, ProductID: 2, OrderedQuantity: 1, TotalAmount: 25},  // profit 20
		{ID: 3, ProductID: 3, OrderedQuantity: 1, TotalAmount: 65},  // profit 5
		{ID: 4, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100, IsReturned: true},
	}

	r := TopProducts(items, products, 2)

	require.Len(t, r.ByRevenue, 2)
	assert.Equal(t, int64(1), r.ByRevenue[0].ProductID)
	assert.InDelta(t, 100.0, r.ByRevenue[0].Value, 1e-9)

	require.Len(t, r.ByProfit, 2)
	assert.Equal(t, int64(1), r.ByProfit[0].ProductID)

	require.Len(t, r.LowestProfit, 2)
	assert.Equal(t, int64(3), r.LowestProfit[0].ProductID)
	assert.InDelta(t, 5.0, r.LowestProfit[0].Value, 1e-9)
}

func TestProfitByCategoryDept(t *testing.T) {
	products := testProducts()
	items := []dataset.OrderItem{
		{ID: 1, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100},
		{ID: 2, ProductID: 2, OrderedQuantity: 1, TotalAmount: 25},
		{ID: 3, ProductID: 3, OrderedQuantity: 1, TotalAmount: 65},
	}

	cells := ProfitByCategoryDept(items, products)
	require.Len(t, cells, 3)
	assert.Equal(t, "Footwear", cells[0].Category)
	assert.Equal(t, "Sportswear", cells[0].Department)
	assert.InDelta(t, 60.0, cells[0].Profit, 1e-9)
}

func TestRevenueBreakdown(t *testing.T) {
	products := testProducts()
	items := []dataset.OrderItem{
		{ID: 1, ProductID: 1, OrderedQuantity: 1, TotalAmount: 100},
		{ID: 2, ProductID: 2, OrderedQuantity: 1, TotalAmount: 25},
		{ID: 3, ProductID: 3, OrderedQuantity: 1, TotalAmount: 65},
	}

	b := RevenueBreakdown(items, products)

	require.Len(t, b.ByCategory, 2)
	assert.Equal(t, BreakdownEntry{Name: "Footwear", Value: 100}, b.ByCategory[0])
	assert.Equal(t, BreakdownEntry{Name: "Apparel", Value: 90}, b.ByCategory[1])

	require.Len(t, b.ByBrand, 2)
	assert.Equal(t, "Strider", b.ByBrand[0].Name)
}

func TestCustomerSpendingIncludesZeroOrderCustomers(t *testing.T) {
	customers := []dataset.Customer{
		{ID: 1, FullName: "Asha Iyer"},
		{ID: 2, FullName: "Rohan Mehta"},
	}
	orders := []dataset.Order{
		{ID: 10, CustomerID: 1, OrderDate: date(2024, 1, 5), TotalAmount: 80},
		{ID: 11, CustomerID: 1, OrderDate: date(2024, 6, 2), TotalAmount: 20},
	}

	spends := CustomerSpending(orders, customers)
	require.Len(t, spends, 2)

	assert.Equal(t, int64(1), spends[0].CustomerID)
	assert.InDelta(t, 100.0, spends[0].TotalSpent, 1e-9)
	assert.Equal(t, 2, spends[0].OrderCount)
	require.NotNil(t, spends[0].LastOrder)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), *spends[0].LastOrder)

	// Customer with no orders still appears, zero spend, no last order.
	assert.Equal(t, int64(2), spends[1].CustomerID)
	assert.Zero(t, spends[1].TotalSpent)
	assert.Nil(t, spends[1].LastOrder)
}

func TestSearchCustomerSpend(t *testing.T) {
	spends := []CustomerSpend{
		{CustomerID: 1, Name: "Asha Iyer"},
		{CustomerID: 42, Name: "Rohan Mehta"},
	}

	assert.Len(t, SearchCustomerSpend(spends, ""), 2)
	assert.Equal(t, "Rohan Mehta", SearchCustomerSpend(spends, "rohan")[0].Name)
	assert.Equal(t, int64(42), SearchCustomerSpend(spends, "42")[0].CustomerID)
	assert.Empty(t, SearchCustomerSpend(spends, "nobody"))
}

func TestComputeReturnStats(t *testing.T) {
	returns := []dataset.Return{
		{OrderID: 1, ReturnDate: date(2024, 1, 10), PickupScheduled: date(2024, 1, 12), RefundProcessed: date(2024, 1, 16)},
		{OrderID: 2, ReturnDate: date(2024, 2, 1)}, // no refund or pickup dates
	}

	stats := ComputeReturnStats(returns)
	assert.Equal(t, 2, stats.Total)
	// Averages divide by the total return count, not by the rows that
	// carry the dates.
	assert.InDelta(t, 3.0, stats.AvgRefundDays, 1e-9)
	assert.InDelta(t, 1.0, stats.AvgPickupDelayDays, 1e-9)

	require.Len(t, stats.Monthly, 2)
	assert.Equal(t, "Jan 2024", stats.Monthly[0].Label)
	assert.Equal(t, 1, stats.Monthly[0].Count)
}

func TestComputeReturnStatsEmpty(t *testing.T) {
	stats := ComputeReturnStats(nil)
	assert.Zero(t, stats.AvgRefundDays)
	assert.Zero(t, stats.AvgPickupDelayDays)
	assert.Empty(t, stats.Monthly)
}

func TestCountReturnsInOrders(t *testing.T) {
	returns := []dataset.Return{{OrderID: 1}, {OrderID: 2}, {OrderID: 3}}
	orders := []dataset.Order{{ID: 1}, {ID: 3}}

	// Only returns whose parent order survives the filter are counted.
	assert.Equal(t, 2, CountReturnsInOrders(returns, orders))
	assert.Equal(t, 0, CountReturnsInOrders(returns, nil))
}

func TestFilterYear(t *testing.T) {
	snap := &dataset.Snapshot{
		Products: testProducts(),
		Orders: []dataset.Order{
			{ID: 1, OrderDate: date(2023, 5, 1)},
			{ID: 2, OrderDate: date(2024, 5, 1)},
		},
		OrderItems: []dataset.OrderItem{
			{ID: 1, OrderID: 1},
			{ID: 2, OrderID: 2},
		},
		Returns:   []dataset.Return{{OrderID: 1}},
		Customers: []dataset.Customer{{ID: 1}},
	}

	filtered := FilterYear(snap, 2024)
	require.Len(t, filtered.Orders, 1)
	assert.Equal(t, int64(2), filtered.Orders[0].ID)
	require.Len(t, filtered.OrderItems, 1)
	assert.Equal(t, int64(2), filtered.OrderItems[0].OrderID)

	// Products, returns, and customers pass through unfiltered.
	assert.Len(t, filtered.Products, 3)
	assert.Len(t, filtered.Returns, 1)
	assert.Len(t, filtered.Customers, 1)

	// Zero means no filter.
	assert.Same(t, snap, FilterYear(snap, 0))
}

func TestYears(t *testing.T) {
	orders := []dataset.Order{
		{ID: 1, OrderDate: date(2024, 1, 1)},
		{ID: 2, OrderDate: date(2022, 6, 1)},
		{ID: 3, OrderDate: date(2024, 9, 1)},
		{ID: 4}, // zero date ignored
	}
	assert.Equal(t, []int{2022, 2024}, Years(orders))
}
