// internal/pkg/listops/listops.go
package listops

import (
	"sort"
	"strings"
)

// FilterAll is the escape value that disables an exact-match filter.
const FilterAll = "All"

// Search returns the items whose extracted fields contain term,
// case-insensitively. An empty term matches everything. Input order is
// preserved.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Filter keeps the items for which keep returns true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches implements an exact-match filter with the "All" escape value.
func Matches(value, selected string) bool {
	return selected == "" || selected == FilterAll || value == selected
}

// SortBy sorts a copy of items with a three-way comparator: cmp returns
// a negative number, zero, or a positive number. Ties keep their
// original relative order, so identical inputs always produce identical
// output ordering. desc inverts the comparator, not the stability.
func SortBy[T any](items []T, cmp func(a, b T) int, desc bool) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Compare is a three-way comparator over any ordered type.
func Compare[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Paginate slices items into fixed-size pages with 1-based indices.
// Out-of-range pages yield an empty slice, never an error.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns how many pages of the given size the items span.
func TotalPages(total, size int) int {
	if size < 1 || total < 1 {
		return 0
	}
	return (total + size - 1) / size
}

// PriceBand buckets a price into the storefront's fixed display bands.
type PriceBand string

const (
	PriceBandAll    PriceBand = "All"
	PriceBandBudget PriceBand = "Under $25"
	PriceBandMid    PriceBand = "$25 - $50"
	PriceBandUpper  PriceBand = "$50 - $100"
	PriceBandLuxury PriceBand = "$100+"
)

// BandFor returns the band a price falls into.
func BandFor(price float64) PriceBand {
	switch {
	case price < 25:
		return PriceBandBudget
	case price < 50:
		return PriceBandMid
	case price < 100:
		return PriceBandUpper
	default:
		return PriceBandLuxury
	}
}
