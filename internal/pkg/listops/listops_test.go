package listops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sku struct {
	Name  string
	Brand string
	Price float64
}

var skus = []sku{
	{"Trail Shoe", "Strider", 89.99},
	{"Cotton Tee", "Loom", 19.99},
	{"Fleece Jacket", "NorthPeak", 129.00},
	{"Canvas Sneakers", "Strider", 49.95},
}

func skuFields(s sku) []string { return []string{s.Name, s.Brand} }

func TestSearch(t *testing.T) {
	assert.Len(t, Search(skus, "", skuFields), 4)
	assert.Len(t, Search(skus, "STRIDER", skuFields), 2)

	got := Search(skus, "shoe", skuFields)
	assert.Equal(t, []sku{skus[0]}, got)

	assert.Empty(t, Search(skus, "nothing", skuFields))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Footwear", ""))
	assert.True(t, Matches("Footwear", "All"))
	assert.True(t, Matches("Footwear", "Footwear"))
	assert.False(t, Matches("Footwear", "Apparel"))
}

func TestSortByStableTies(t *testing.T) {
	items := []sku{
		{"B", "x", 10},
		{"A", "y", 10},
		{"C", "z", 5},
	}

	byPrice := func(a, b sku) int { return Compare(a.Price, b.Price) }

	asc := SortBy(items, byPrice, false)
	// Equal prices keep input order.
	assert.Equal(t, []string{"C", "B", "A"}, []string{asc[0].Name, asc[1].Name, asc[2].Name})

	desc := SortBy(items, byPrice, true)
	assert.Equal(t, []string{"B", "A", "C"}, []string{desc[0].Name, desc[1].Name, desc[2].Name})

	// Sorting twice yields the same order.
	again := SortBy(asc, byPrice, false)
	assert.Equal(t, asc, again)

	// Input untouched.
	assert.Equal(t, "B", items[0].Name)
}

func TestPaginate(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(nums, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(nums, 2, 2))
	assert.Equal(t, []int{5}, Paginate(nums, 3, 2))
	assert.Empty(t, Paginate(nums, 4, 2))
	assert.Empty(t, Paginate(nums, 0, 2))
	assert.Empty(t, Paginate(nums, 1, 0))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(5, 2))
	assert.Equal(t, 1, TotalPages(2, 2))
	assert.Equal(t, 0, TotalPages(0, 2))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, PriceBandBudget, BandFor(24.99))
	assert.Equal(t, PriceBandMid, BandFor(25))
	assert.Equal(t, PriceBandUpper, BandFor(99.99))
	assert.Equal(t, PriceBandLuxury, BandFor(100))
}
