package assistant

import (
	"strings"

	"GlowBeauty/internal/catalog"
)

const (
	maxRecommendations = 4
	fallbackCount      = 3
)

// Recommend picks products whose name, description or category mention any
// of the analysis keywords, in catalog order. When nothing matches it falls
// back to the first few products so the shopper always sees something.
func Recommend(products []catalog.Product, keywords []string) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		haystack := strings.ToLower(p.Name + p.Description + p.Category)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
				out = append(out, p)
				break
			}
		}
		if len(out) == maxRecommendations {
			return out
		}
	}

	if len(out) > 0 {
		return out
	}
	if len(products) > fallbackCount {
		products = products[:fallbackCount]
	}
	return products
}
