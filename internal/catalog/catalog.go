package catalog

import "strings"

// Catalog is the in-memory product collection. It is loaded once at startup
// and never mutated, so reads need no locking; accessors copy slices before
// returning them to keep callers from aliasing internal state.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[string]Product
	bySlug     map[string]Category
}

func New(products []Product, categories []Category) *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		byID:       make(map[string]Product, len(products)),
		bySlug:     make(map[string]Category, len(categories)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	for _, cat := range categories {
		c.bySlug[cat.Slug] = cat
	}
	return c
}

// NewDefault builds a catalog from the seeded demo dataset.
func NewDefault() *Catalog {
	return New(seedProducts, seedCategories)
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []Product {
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// ByID looks a product up by its identifier.
func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Categories() []Category {
	cp := make([]Category, len(c.categories))
	copy(cp, c.categories)
	return cp
}

func (c *Catalog) CategoryBySlug(slug string) (Category, bool) {
	cat, ok := c.bySlug[slug]
	return cat, ok
}

// Featured returns the products flagged for the storefront landing page.
func (c *Catalog) Featured() []Product {
	return c.filter(func(p Product) bool { return p.Featured })
}

func (c *Catalog) New() []Product {
	return c.filter(func(p Product) bool { return p.IsNew })
}

func (c *Catalog) Sale() []Product {
	return c.filter(func(p Product) bool { return p.IsSale })
}

// Search matches q case-insensitively against name, description and category.
func (c *Catalog) Search(q string) []Product {
	q = strings.ToLower(q)
	return c.filter(func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// Related returns up to n other products sharing p's category, in catalog
// order.
func (c *Catalog) Related(p Product, n int) []Product {
	out := make([]Product, 0, n)
	for _, cand := range c.products {
		if len(out) == n {
			break
		}
		if cand.CategorySlug == p.CategorySlug && cand.ID != p.ID {
			out = append(out, cand)
		}
	}
	return out
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	var out []Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
