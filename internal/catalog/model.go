package catalog

import "math"

// Color is a selectable product color swatch.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product is an immutable catalog record. OriginalPrice is zero when the
// product has never been discounted.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	CategorySlug  string   `json:"categorySlug"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []Color  `json:"colors,omitempty"`
	Featured      bool     `json:"featured"`
	IsNew         bool     `json:"isNew"`
	IsSale        bool     `json:"isSale"`
}

// DiscountPercent returns the rounded percentage saved against OriginalPrice,
// or 0 when the product has no original price. Callers guarantee
// OriginalPrice > Price; a violated precondition yields a zero or negative
// percentage rather than an error.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == 0 {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// Category groups products under a canonical slug used as the filter key.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}
