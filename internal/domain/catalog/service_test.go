package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
)

func product(id int64, category string) dataset.Product {
	return dataset.Product{ID: id, Category: category, IsActive: true}
}

func TestInterleaveRoundRobin(t *testing.T) {
	products := []dataset.Product{
		product(1, "A"),
		product(2, "A"),
		product(3, "A"),
		product(4, "B"),
	}

	out := Interleave(products, 10)

	ids := make([]int64, len(out))
	for i, p := range out {
		ids[i] = p.ID
	}
	// One from each category per round; B drops out after its first,
	// A keeps emitting.
	assert.Equal(t, []int64{1, 4, 2, 3}, ids)
}

func TestInterleaveCap(t *testing.T) {
	products := make([]dataset.Product, 0, 20)
	for i := int64(1); i <= 10; i++ {
		products = append(products, product(i, "A"))
	}
	for i := int64(11); i <= 20; i++ {
		products = append(products, product(i, "B"))
	}

	out := Interleave(products, 5)
	require.Len(t, out, 5)
	// First-seen category order: A leads each round.
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(11), out[1].ID)

	assert.Empty(t, Interleave(products, 0))
	assert.Len(t, Interleave(products, 100), 20)
}

func TestListProductsFilterSortPaginate(t *testing.T) {
	store := dataset.NewStore()
	require.NoError(t, store.Publish(&dataset.Snapshot{Products: []dataset.Product{
		{ID: 1, Name: "Trail Shoe", Brand: "Strider", Category: "Footwear", Department: "Sportswear", SellingPrice: 89.99, IsActive: true},
		{ID: 2, Name: "Cotton Tee", Brand: "Loom", Category: "Apparel", Department: "Menswear", SellingPrice: 19.99, IsActive: true},
		{ID: 3, Name: "Canvas Sneakers", Brand: "Strider", Category: "Footwear", Department: "Menswear", SellingPrice: 49.95, IsActive: false},
	}}, dataset.StatusFullyLoaded))

	cfg := &config.Config{Data: config.DataConfig{CatalogCap: 500}}
	svc := NewService(store, cfg)

	resp := svc.ListProducts(&ListRequest{Category: "Footwear", SortKey: "selling_unit_price", Page: 1, Limit: 10})
	require.Len(t, resp.Products, 2)
	assert.Equal(t, int64(3), resp.Products[0].ID)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.TotalPages)

	// Status filter narrows to inactive rows.
	resp = svc.ListProducts(&ListRequest{Status: "Inactive", Page: 1, Limit: 10})
	require.Len(t, resp.Products, 1)
	assert.Equal(t, int64(3), resp.Products[0].ID)

	// Filter options carry the All escape plus distinct values.
	assert.Equal(t, []string{"All", "Apparel", "Footwear"}, resp.Categories)

	// Price band filter.
	resp = svc.ListProducts(&ListRequest{PriceBand: "Under $25", Page: 1, Limit: 10})
	require.Len(t, resp.Products, 1)
	assert.Equal(t, int64(2), resp.Products[0].ID)
}

func TestListCatalogUsesInterleavedSet(t *testing.T) {
	store := dataset.NewStore()
	products := make([]dataset.Product, 0, 6)
	for i := int64(1); i <= 5; i++ {
		products = append(products, product(i, "A"))
	}
	products = append(products, product(6, "B"))
	require.NoError(t, store.Publish(&dataset.Snapshot{Products: products}, dataset.StatusFullyLoaded))

	// Cap of 3 cuts eligibility before any filtering.
	cfg := &config.Config{Data: config.DataConfig{CatalogCap: 3}}
	svc := NewService(store, cfg)

	resp := svc.ListCatalog(&ListRequest{Page: 1, Limit: 10})
	assert.Equal(t, 3, resp.Total)
}

func TestFallbackImageDeterministic(t *testing.T) {
	first := FallbackImage(42)
	assert.Equal(t, first, FallbackImage(42))
	assert.Contains(t, fallbackImages, first)
}
