// internal/domain/catalog/image.go
package catalog

import (
	"fmt"
	"hash/fnv"

	"github.com/your-org/retail-insights/internal/dataset"
)

// fallbackImages are served when a product record carries no image URL.
// The same product always maps to the same fallback.
var fallbackImages = []string{
	"/static/products/placeholder-1.jpg",
	"/static/products/placeholder-2.jpg",
	"/static/products/placeholder-3.jpg",
	"/static/products/placeholder-4.jpg",
	"/static/products/placeholder-5.jpg",
	"/static/products/placeholder-6.jpg",
}

func imageURL(p dataset.Product) string {
	if p.Image != "" {
		return p.Image
	}
	return FallbackImage(p.ID)
}

// FallbackImage picks a deterministic placeholder for a product by
// hashing its id, so lists stay visually stable across requests.
func FallbackImage(productID int64) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d", productID)
	return fallbackImages[int(h.Sum32())%len(fallbackImages)]
}
