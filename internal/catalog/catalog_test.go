package catalog

import "testing"

func TestCatalogLookups(t *testing.T) {
	c := NewDefault()

	p, ok := c.ByID("1")
	if !ok {
		t.Fatal("product 1 must exist in the seed data")
	}
	if p.Name != "Premium Wireless Headphones" {
		t.Fatalf("unexpected product: %s", p.Name)
	}

	if _, ok := c.ByID("does-not-exist"); ok {
		t.Fatal("unknown id must not resolve")
	}

	cat, ok := c.CategoryBySlug("electronics")
	if !ok || cat.Name != "Electronics" {
		t.Fatalf("electronics category lookup failed: %+v", cat)
	}
}

func TestCatalogFlagFilters(t *testing.T) {
	c := NewDefault()

	for _, p := range c.Featured() {
		if !p.Featured {
			t.Fatalf("Featured() returned non-featured product %s", p.ID)
		}
	}
	for _, p := range c.New() {
		if !p.IsNew {
			t.Fatalf("New() returned non-new product %s", p.ID)
		}
	}
	for _, p := range c.Sale() {
		if !p.IsSale {
			t.Fatalf("Sale() returned non-sale product %s", p.ID)
		}
	}
}

func TestCatalogSearchIncludesCategoryName(t *testing.T) {
	c := NewDefault()

	// "fashion" appears only as a category name, not in names/descriptions.
	got := c.Search("fashion")
	if len(got) == 0 {
		t.Fatal("search by category name must match")
	}
	for _, p := range got {
		if p.Category != "Fashion" {
			t.Fatalf("unexpected product %s in fashion search", p.ID)
		}
	}
}

func TestCatalogRelated(t *testing.T) {
	c := NewDefault()
	p, _ := c.ByID("1") // electronics

	related := c.Related(p, 4)
	if len(related) == 0 {
		t.Fatal("expected related electronics products")
	}
	for _, r := range related {
		if r.ID == p.ID {
			t.Fatal("related must exclude the product itself")
		}
		if r.CategorySlug != p.CategorySlug {
			t.Fatalf("related product %s is from %s", r.ID, r.CategorySlug)
		}
	}

	if got := c.Related(p, 1); len(got) != 1 {
		t.Fatalf("limit not honored: got %d", len(got))
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c := NewDefault()

	first := c.Products()
	first[0].Name = "mutated"

	if c.Products()[0].Name == "mutated" {
		t.Fatal("Products must return a copy, not the backing slice")
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := map[string]struct {
		product Product
		want    int
	}{
		"no original price": {
			product: Product{Price: 100},
			want:    0,
		},
		"typical discount": {
			product: Product{Price: 299.99, OriginalPrice: 349.99},
			want:    14,
		},
		"original below price goes negative": {
			product: Product{Price: 120, OriginalPrice: 100},
			want:    -20,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.product.DiscountPercent(); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}
