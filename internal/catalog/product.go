package catalog

import "math"

// Product mirrors the persisted JSON shape field for field. Prices are whole
// currency units (IDR), never fractional.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	IsNew         bool    `json:"isNew,omitempty"`
	IsSale        bool    `json:"isSale,omitempty"`
}

// Input carries the caller-supplied fields for a new product. Id, rating and
// review count are assigned by the store.
type Input struct {
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	IsSale        bool   `json:"isSale,omitempty"`
}

// DiscountPercent derives the sale badge from the advisory original price.
// OriginalPrice carries no enforced ordering against Price, so anything not
// strictly above the current price yields no discount.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100))
}

// Categories is the fixed set shown in the shop filter sidebar.
var Categories = []string{
	"Skincare",
	"Makeup",
	"Hair Care",
	"Body",
	"Fragrance",
	"Tools",
	"Natural",
	"New Arrivals",
}
