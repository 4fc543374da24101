// internal/domain/analytics/aggregate.go
package analytics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/your-org/retail-insights/internal/dataset"
)

// The functions in this file are the aggregation core: pure,
// referentially transparent passes over the loaded collections.
// A foreign key with no matching target is always a skip, never a fault.

// SalesStats holds the Overview KPI numbers.
type SalesStats struct {
	Revenue          float64 `json:"revenue"`
	Cost             float64 `json:"cost"`
	Profit           float64 `json:"profit"`
	MarginPercent    float64 `json:"margin_percent"`
	ReturnedItems    int     `json:"returned_items"`
	ActiveProducts   int     `json:"active_products"`
	InactiveProducts int     `json:"inactive_products"`
	OrderCount       int     `json:"order_count"`
}

// ComputeSalesStats runs the single revenue/cost/profit pass over the
// order items. Items flagged as returned contribute nothing to revenue
// or cost but are tallied; items whose product is missing are skipped.
func ComputeSalesStats(products []dataset.Product, orders []dataset.Order, items []dataset.OrderItem) SalesStats {
	stats := SalesStats{OrderCount: len(orders)}

	productByID := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	for _, item := range items {
		if item.IsReturned {
			stats.ReturnedItems++
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		stats.Revenue += item.TotalAmount
		stats.Cost += p.CostPrice * float64(item.OrderedQuantity)
	}
	stats.Profit = stats.Revenue - stats.Cost

	// Margin falls back to 0 on zero revenue, never NaN or Inf.
	if stats.Revenue != 0 {
		stats.MarginPercent = stats.Profit / stats.Revenue * 100
	}

	// Active/inactive partition is independent of the order-item pass.
	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		} else {
			stats.InactiveProducts++
		}
	}

	return stats
}

// TrendPoint is one calendar-month bucket of the trend series.
type TrendPoint struct {
	Month   time.Time `json:"-"`
	Label   string    `json:"name"`
	Revenue float64   `json:"revenue"`
	Cost    float64   `json:"cost"`
	Profit  float64   `json:"profit"`
	Orders  int       `json:"orders"`
}

// ProfitTrends buckets orders and their items by calendar month.
// Buckets sort chronologically on the underlying month, never on the
// label: "Jan 2024" must come after "Feb 2023". When monthOnly is set
// (a year filter narrowed the data to one year) labels drop the year.
func ProfitTrends(orders []dataset.Order, items []dataset.OrderItem, products []dataset.Product, monthOnly bool) []TrendPoint {
	productByID := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	orderDate := make(map[int64]time.Time, len(orders))
	buckets := make(map[time.Time]*TrendPoint)

	bucketFor := func(t time.Time) *TrendPoint {
		month := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &TrendPoint{Month: month}
			buckets[month] = b
		}
		return b
	}

	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		orderDate[o.ID] = o.OrderDate.Time
		bucketFor(o.OrderDate.Time).Orders++
	}

	for _, item := range items {
		if item.IsReturned {
			continue
		}
		date, ok := orderDate[item.OrderID]
		if !ok {
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		b := bucketFor(date)
		b.Revenue += item.TotalAmount
		b.Cost += p.CostPrice * float64(item.OrderedQuantity)
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		b.Profit = b.Revenue - b.Cost
		if monthOnly {
			b.Label = b.Month.Format("Jan")
		} else {
			b.Label = b.Month.Format("Jan 2006")
		}
		trend = append(trend, *b)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month.Before(trend[j].Month) })
	return trend
}

// ProductRanking is one entry of a top/bottom product list.
type ProductRanking struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
}

// Rankings carries the three product rankings of the Revenue page.
type Rankings struct {
	ByRevenue    []ProductRanking `json:"by_revenue"`
	ByProfit     []ProductRanking `json:"by_profit"`
	LowestProfit []ProductRanking `json:"lowest_profit"`
}

// TopProducts groups non-returned order-item revenue and profit by
// product and returns the top n of each, plus the n lowest profit
// generators (ascending).
func TopProducts(items []dataset.OrderItem, products []dataset.Product, n int) Rankings {
	productByID := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	type acc struct {
		revenue float64
		profit  float64
	}
	byProduct := make(map[int64]*acc)
	ids := make([]int64, 0)

	for _, item := range items {
		if item.IsReturned {
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		a, ok := byProduct[item.ProductID]
		if !ok {
			a = &acc{}
			byProduct[item.ProductID] = a
			ids = append(ids, item.ProductID)
		}
		a.revenue += item.TotalAmount
		a.profit += item.TotalAmount - p.CostPrice*float64(item.OrderedQuantity)
	}

	// Deterministic base order before the value sorts.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rank := func(value func(*acc) float64, asc bool) []ProductRanking {
		out := make([]ProductRanking, 0, len(ids))
		for _, id := range ids {
			out = append(out, ProductRanking{
				ProductID: id,
				Name:      productByID[id].Name,
				Value:     value(byProduct[id]),
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Value < out[j].Value
			}
			return out[i].Value > out[j].Value
		})
		if len(out) > n {
			out = out[:n]
		}
		return out
	}

	return Rankings{
		ByRevenue:    rank(func(a *acc) float64 { return a.revenue }, false),
		ByProfit:     rank(func(a *acc) float64 { return a.profit }, false),
		LowestProfit: rank(func(a *acc) float64 { return a.profit }, true),
	}
}

// CategoryDeptProfit is one cell of the category x department matrix.
type CategoryDeptProfit struct {
	Category   string  `json:"category"`
	Department string  `json:"department"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
}

// ProfitByCategoryDept runs the KPI join grouped by the
// (category, department) pair instead of flattened to one scalar.
// Output sorts by profit descending.
func ProfitByCategoryDept(items []dataset.OrderItem, products []dataset.Product) []CategoryDeptProfit {
	productByID := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	type key struct{ category, department string }
	cells := make(map[key]*CategoryDeptProfit)

	for _, item := range items {
		if item.IsReturned {
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		k := key{orUnknown(p.Category), orUnknown(p.Department)}
		cell, ok := cells[k]
		if !ok {
			cell = &CategoryDeptProfit{Category: k.category, Department: k.department}
			cells[k] = cell
		}
		cell.Revenue += item.TotalAmount
		cell.Profit += item.TotalAmount - p.CostPrice*float64(item.OrderedQuantity)
	}

	out := make([]CategoryDeptProfit, 0, len(cells))
	for _, cell := range cells {
		out = append(out, *cell)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit != out[j].Profit {
			return out[i].Profit > out[j].Profit
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Department < out[j].Department
	})
	return out
}

// BreakdownEntry is one named revenue bucket.
type BreakdownEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RevenueBreakdowns carries the Sales Analytics grouping charts.
type RevenueBreakdowns struct {
	ByCategory   []BreakdownEntry `json:"by_category"`
	ByBrand      []BreakdownEntry `json:"by_brand"`
	ByDepartment []BreakdownEntry `json:"by_department"`
}

// RevenueBreakdown groups non-returned order-item revenue by product
// category, brand, and department. Brands are cut to the top 10.
func RevenueBreakdown(items []dataset.OrderItem, products []dataset.Product) RevenueBreakdowns {
	productByID := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	byCategory := make(map[string]float64)
	byBrand := make(map[string]float64)
	byDepartment := make(map[string]float64)

	for _, item := range items {
		if item.IsReturned {
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		byCategory[orUnknown(p.Category)] += item.TotalAmount
		byBrand[orUnknown(p.Brand)] += item.TotalAmount
		byDepartment[orUnknown(p.Department)] += item.TotalAmount
	}

	brands := toSortedEntries(byBrand)
	if len(brands) > 10 {
		brands = brands[:10]
	}

	return RevenueBreakdowns{
		ByCategory:   toSortedEntries(byCategory),
		ByBrand:      brands,
		ByDepartment: toSortedEntries(byDepartment),
	}
}

// CustomerSpend is one customer's lifetime spend summary.
type CustomerSpend struct {
	CustomerID int64      `json:"customer_id"`
	Name       string     `json:"name"`
	TotalSpent float64    `json:"total_spent"`
	OrderCount int        `json:"order_count"`
	LastOrder  *time.Time `json:"last_order"` // nil means never ordered
}

// CustomerSpending sums order totals per customer and finds each
// customer's most recent order date. Customers with no orders appear
// with zero spend and a nil last order. Output sorts by spend
// descending, customer ID ascending on ties.
func CustomerSpending(orders []dataset.Order, customers []dataset.Customer) []CustomerSpend {
	spends := make([]CustomerSpend, len(customers))
	index := make(map[int64]int, len(customers))
	for i, c := range customers {
		spends[i] = CustomerSpend{CustomerID: c.ID, Name: c.DisplayName()}
		index[c.ID] = i
	}

	for _, o := range orders {
		i, ok := index[o.CustomerID]
		if !ok {
			continue
		}
		spends[i].TotalSpent += o.TotalAmount
		spends[i].OrderCount++
		if !o.OrderDate.IsZero() {
			if spends[i].LastOrder == nil || o.OrderDate.After(*spends[i].LastOrder) {
				t := o.OrderDate.Time
				spends[i].LastOrder = &t
			}
		}
	}

	sort.SliceStable(spends, func(i, j int) bool {
		if spends[i].TotalSpent != spends[j].TotalSpent {
			return spends[i].TotalSpent > spends[j].TotalSpent
		}
		return spends[i].CustomerID < spends[j].CustomerID
	})
	return spends
}

// SearchCustomerSpend filters spend summaries by case-insensitive
// substring match on name or customer ID.
func SearchCustomerSpend(spends []CustomerSpend, term string) []CustomerSpend {
	if term == "" {
		return spends
	}
	needle := strings.ToLower(term)
	out := make([]CustomerSpend, 0, len(spends))
	for _, s := range spends {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strconv.FormatInt(s.CustomerID, 10), needle) {
			out = append(out, s)
		}
	}
	return out
}

// MonthCount is one calendar-month bucket of return volume.
type MonthCount struct {
	Month time.Time `json:"-"`
	Label string    `json:"name"`
	Count int       `json:"count"`
}

// ReturnStats summarizes the returns collection for the Returns page.
type ReturnStats struct {
	Total              int          `json:"total"`
	AvgRefundDays      float64      `json:"avg_refund_days"`
	AvgPickupDelayDays float64      `json:"avg_pickup_delay_days"`
	Monthly            []MonthCount `json:"monthly"`
}

// ComputeReturnStats derives refund-processing and pickup-delay
// averages plus a chronological monthly volume series. Averages divide
// by the full return count, matching the dashboard's historical
// behavior, and fall back to 0 when there are no returns.
func ComputeReturnStats(returns []dataset.Return) ReturnStats {
	stats := ReturnStats{Total: len(returns)}

	var refundDays, pickupDays float64
	monthly := make(map[time.Time]int)

	for _, r := range returns {
		if !r.ReturnDate.IsZero() && !r.RefundProcessed.IsZero() {
			refundDays += r.RefundProcessed.Sub(r.ReturnDate.Time).Hours() / 24
		}
		if !r.ReturnDate.IsZero() && !r.PickupScheduled.IsZero() {
			pickupDays += r.PickupScheduled.Sub(r.ReturnDate.Time).Hours() / 24
		}
		if !r.ReturnDate.IsZero() {
			month := time.Date(r.ReturnDate.Year(), r.ReturnDate.Month(), 1, 0, 0, 0, 0, time.UTC)
			monthly[month]++
		}
	}

	if stats.Total > 0 {
		stats.AvgRefundDays = refundDays / float64(stats.Total)
		stats.AvgPickupDelayDays = pickupDays / float64(stats.Total)
	}

	stats.Monthly = make([]MonthCount, 0, len(monthly))
	for month, count := range monthly {
		stats.Monthly = append(stats.Monthly, MonthCount{
			Month: month,
			Label: month.Format("Jan 2006"),
			Count: count,
		})
	}
	sort.Slice(stats.Monthly, func(i, j int) bool {
		return stats.Monthly[i].Month.Before(stats.Monthly[j].Month)
	})
	return stats
}

// CountReturnsInOrders counts returns whose parent order is a member of
// the given order set. When that set was narrowed by a filter, returns
// whose order fell outside it are not counted; the two filters interact
// and the page undercounts on purpose.
func CountReturnsInOrders(returns []dataset.Return, orders []dataset.Order) int {
	orderIDs := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		orderIDs[o.ID] = struct{}{}
	}

	count := 0
	for _, r := range returns {
		if _, ok := orderIDs[r.OrderID]; ok {
			count++
		}
	}
	return count
}

// FilterYear narrows orders to one calendar year and order items to
// members of the surviving order set. Zero year means no filter.
// Products, returns, and customers pass through untouched.
func FilterYear(snap *dataset.Snapshot, year int) *dataset.Snapshot {
	if year == 0 {
		return snap
	}

	orders := make([]dataset.Order, 0, len(snap.Orders))
	orderIDs := make(map[int64]struct{})
	for _, o := range snap.Orders {
		if o.OrderDate.IsZero() || o.OrderDate.Year() != year {
			continue
		}
		orders = append(orders, o)
		orderIDs[o.ID] = struct{}{}
	}

	items := make([]dataset.OrderItem, 0, len(snap.OrderItems))
	for _, item := range snap.OrderItems {
		if _, ok := orderIDs[item.OrderID]; ok {
			items = append(items, item)
		}
	}

	return &dataset.Snapshot{
		Products:   snap.Products,
		Orders:     orders,
		OrderItems: items,
		Returns:    snap.Returns,
		Customers:  snap.Customers,
	}
}

// Years lists the distinct order years, ascending, for filter options.
func Years(orders []dataset.Order) []int {
	seen := make(map[int]struct{})
	for _, o := range orders {
		if !o.OrderDate.IsZero() {
			seen[o.OrderDate.Year()] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func toSortedEntries(m map[string]float64) []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(m))
	for name, value := range m {
		out = append(out, BreakdownEntry{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
