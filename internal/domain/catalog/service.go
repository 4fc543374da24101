// internal/domain/catalog/service.go
package catalog

import (
	"sort"

	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/pkg/listops"
)

// Service handles product listing for the internal table view and the
// public storefront catalog.
type Service struct {
	store  *dataset.Store
	config *config.Config
}

// NewService creates a new catalog service
func NewService(store *dataset.Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// ListRequest carries the table/catalog query parameters.
type ListRequest struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Department string `form:"department"`
	Status     string `form:"status"`     // All | Active | Inactive
	PriceBand  string `form:"price_band"` // storefront only
	SortKey    string `form:"sort"`
	SortDesc   bool   `form:"desc"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// ProductView is a product row enriched with a usable image URL.
type ProductView struct {
	dataset.Product
	ImageURL string `json:"image_url"`
}

// ListResponse is a filtered, sorted, paginated product page plus the
// filter options the UI offers.
type ListResponse struct {
	Products    []ProductView `json:"products"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	Limit       int           `json:"limit"`
	TotalPages  int           `json:"total_pages"`
	Categories  []string      `json:"categories"`
	Departments []string      `json:"departments"`
}

// ListProducts serves the internal Products table: the raw product set
// with search, exact filters, column sort, and pagination.
func (s *Service) ListProducts(req *ListRequest) *ListResponse {
	return s.list(s.store.Snapshot().Products, req)
}

// ListCatalog serves the public storefront. The round-robin interleave
// decides which products are even eligible before search/filter/sort
// run, so one oversized category cannot dominate the page.
func (s *Service) ListCatalog(req *ListRequest) *ListResponse {
	eligible := Interleave(s.store.Snapshot().Products, s.config.Data.CatalogCap)
	return s.list(eligible, req)
}

func (s *Service) list(products []dataset.Product, req *ListRequest) *ListResponse {
	filtered := listops.Search(products, req.Search, func(p dataset.Product) []string {
		return []string{p.Name, p.Brand}
	})

	filtered = listops.Filter(filtered, func(p dataset.Product) bool {
		if !listops.Matches(p.Category, req.Category) {
			return false
		}
		if !listops.Matches(p.Department, req.Department) {
			return false
		}
		if !matchesStatus(p, req.Status) {
			return false
		}
		if req.PriceBand != "" && req.PriceBand != string(listops.PriceBandAll) &&
			string(listops.BandFor(p.SellingPrice)) != req.PriceBand {
			return false
		}
		return true
	})

	sorted := listops.SortBy(filtered, comparatorFor(req.SortKey), req.SortDesc)
	page := listops.Paginate(sorted, req.Page, req.Limit)

	views := make([]ProductView, len(page))
	for i, p := range page {
		views[i] = ProductView{Product: p, ImageURL: imageURL(p)}
	}

	return &ListResponse{
		Products:    views,
		Total:       len(sorted),
		Page:        req.Page,
		Limit:       req.Limit,
		TotalPages:  listops.TotalPages(len(sorted), req.Limit),
		Categories:  facetValues(products, func(p dataset.Product) string { return p.Category }),
		Departments: facetValues(products, func(p dataset.Product) string { return p.Department }),
	}
}

// Interleave buckets products by category in first-seen order and emits
// round-robin across the buckets until limit items or full exhaustion.
// An exhausted bucket drops out of the rotation without halting it.
func Interleave(products []dataset.Product, limit int) []dataset.Product {
	if limit <= 0 {
		return nil
	}

	var order []string
	buckets := make(map[string][]dataset.Product)
	for _, p := range products {
		if _, ok := buckets[p.Category]; !ok {
			order = append(order, p.Category)
		}
		buckets[p.Category] = append(buckets[p.Category], p)
	}

	out := make([]dataset.Product, 0, min(limit, len(products)))
	for round := 0; len(out) < limit; round++ {
		emitted := false
		for _, category := range order {
			bucket := buckets[category]
			if round >= len(bucket) {
				continue
			}
			out = append(out, bucket[round])
			emitted = true
			if len(out) == limit {
				break
			}
		}
		if !emitted {
			break
		}
	}
	return out
}

func matchesStatus(p dataset.Product, status string) bool {
	switch status {
	case "", listops.FilterAll:
		return true
	case "Active":
		return p.IsActive
	case "Inactive":
		return !p.IsActive
	default:
		return true
	}
}

func comparatorFor(key string) func(a, b dataset.Product) int {
	switch key {
	case "product_name":
		return func(a, b dataset.Product) int { return listops.Compare(a.Name, b.Name) }
	case "product_brand":
		return func(a, b dataset.Product) int { return listops.Compare(a.Brand, b.Brand) }
	case "product_category":
		return func(a, b dataset.Product) int { return listops.Compare(a.Category, b.Category) }
	case "selling_unit_price":
		return func(a, b dataset.Product) int { return listops.Compare(a.SellingPrice, b.SellingPrice) }
	case "units_in_stock":
		return func(a, b dataset.Product) int { return listops.Compare(a.UnitsInStock, b.UnitsInStock) }
	case "product_rating":
		return func(a, b dataset.Product) int { return listops.Compare(rating(a), rating(b)) }
	default:
		return func(a, b dataset.Product) int { return listops.Compare(a.ID, b.ID) }
	}
}

func rating(p dataset.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func facetValues(products []dataset.Product, value func(dataset.Product) string) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if v := value(p); v != "" {
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen)+1)
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{listops.FilterAll}, values...)
}
