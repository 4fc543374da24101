// internal/domain/analytics/service.go
package analytics

import (
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
)

// Service handles analytics business logic over the dataset store.
type Service struct {
	store  *dataset.Store
	config *config.Config
}

// NewService creates a new analytics service
func NewService(store *dataset.Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// Overview bundles everything the dashboard Overview page renders.
type Overview struct {
	Stats           SalesStats   `json:"stats"`
	ReturnsInFilter int          `json:"returns_in_filter"`
	Trend           []TrendPoint `json:"trend"`
	Years           []int        `json:"years"`
}

// GetOverview computes the Overview KPIs and trend, optionally
// restricted to one order year.
func (s *Service) GetOverview(year int) Overview {
	full := s.store.Snapshot()
	snap := FilterYear(full, year)

	return Overview{
		Stats:           ComputeSalesStats(snap.Products, snap.Orders, snap.OrderItems),
		ReturnsInFilter: CountReturnsInOrders(snap.Returns, snap.Orders),
		Trend:           ProfitTrends(snap.Orders, snap.OrderItems, snap.Products, year != 0),
		Years:           Years(full.Orders),
	}
}

// GetTrend returns the monthly trend series alone, for the Sales
// Analytics page and the CSV export.
func (s *Service) GetTrend(year int) []TrendPoint {
	snap := FilterYear(s.store.Snapshot(), year)
	return ProfitTrends(snap.Orders, snap.OrderItems, snap.Products, year != 0)
}

// SalesReport is the Sales Analytics page payload.
type SalesReport struct {
	Trend      []TrendPoint      `json:"trend"`
	Breakdowns RevenueBreakdowns `json:"breakdowns"`
	Years      []int             `json:"years"`
}

// GetSalesReport computes the trend plus category/brand/department
// revenue groupings.
func (s *Service) GetSalesReport(year int) SalesReport {
	full := s.store.Snapshot()
	snap := FilterYear(full, year)

	return SalesReport{
		Trend:      ProfitTrends(snap.Orders, snap.OrderItems, snap.Products, year != 0),
		Breakdowns: RevenueBreakdown(snap.OrderItems, snap.Products),
		Years:      Years(full.Orders),
	}
}

// RevenueReport is the Revenue page payload.
type RevenueReport struct {
	Rankings Rankings             `json:"rankings"`
	Matrix   []CategoryDeptProfit `json:"matrix"`
	Years    []int                `json:"years"`
}

// GetRevenueReport computes the top/bottom product rankings and the
// category x department profit matrix.
func (s *Service) GetRevenueReport(year, topN int) RevenueReport {
	full := s.store.Snapshot()
	snap := FilterYear(full, year)

	return RevenueReport{
		Rankings: TopProducts(snap.OrderItems, snap.Products, topN),
		Matrix:   ProfitByCategoryDept(snap.OrderItems, snap.Products),
		Years:    Years(full.Orders),
	}
}

// GetCustomerSpending returns per-customer spend summaries, filtered by
// a case-insensitive name/ID search term.
func (s *Service) GetCustomerSpending(search string) []CustomerSpend {
	snap := s.store.Snapshot()
	return SearchCustomerSpend(CustomerSpending(snap.Orders, snap.Customers), search)
}

// GetReturnStats summarizes the returns collection.
func (s *Service) GetReturnStats() ReturnStats {
	return ComputeReturnStats(s.store.Snapshot().Returns)
}
