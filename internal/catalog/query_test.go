package catalog

import (
	"net/url"
	"testing"
)

// fixture returns a small catalog covering every facet the query engine
// filters and sorts on.
func fixture() []Product {
	return []Product{
		{ID: "1", Name: "Premium Wireless Headphones", Description: "Noise cancelling over-ear", Price: 299.99, CategorySlug: "electronics", Rating: 4.8, Featured: true, IsNew: true},
		{ID: "2", Name: "Minimalist Leather Watch", Description: "Swiss movement", Price: 189.99, CategorySlug: "fashion", Rating: 4.9, Featured: true},
		{ID: "3", Name: "Smart Home Speaker", Description: "Wireless voice control", Price: 149.99, CategorySlug: "electronics", Rating: 4.6, Featured: true},
		{ID: "4", Name: "Canvas Backpack", Description: "Water resistant", Price: 79.99, CategorySlug: "fashion", Rating: 4.5, IsNew: true},
		{ID: "5", Name: "Organic Cotton T-Shirt", Description: "Relaxed fit", Price: 39.99, CategorySlug: "fashion", Rating: 4.4},
		{ID: "6", Name: "Smart Fitness Tracker", Description: "Heart rate monitoring", Price: 99.99, CategorySlug: "electronics", Rating: 4.5, IsNew: true},
	}
}

func ids(ps []Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQueryApply(t *testing.T) {
	tests := map[string]struct {
		query Query
		want  []string
	}{
		"zero query keeps everything, featured first": {
			query: Query{},
			want:  []string{"1", "2", "3", "4", "5", "6"},
		},
		"category filter": {
			query: Query{Category: "electronics"},
			want:  []string{"1", "3", "6"},
		},
		"unknown category yields empty result": {
			query: Query{Category: "toys"},
			want:  []string{},
		},
		"text matches name case-insensitively": {
			query: Query{Text: "wireless"},
			want:  []string{"1", "3"},
		},
		"text matches description": {
			query: Query{Text: "heart rate"},
			want:  []string{"6"},
		},
		"bounded price bucket is inclusive": {
			query: Query{Price: Price50To100, Sort: SortPriceAsc},
			want:  []string{"4", "6"},
		},
		"open-ended bucket keeps price >= 200": {
			query: Query{Price: Price200Plus},
			want:  []string{"1"},
		},
		"under-50 bucket": {
			query: Query{Price: PriceUnder50},
			want:  []string{"5"},
		},
		"all bucket applies no filter": {
			query: Query{Price: PriceAll, Sort: SortPriceAsc},
			want:  []string{"5", "4", "6", "3", "2", "1"},
		},
		"price ascending": {
			query: Query{Sort: SortPriceAsc},
			want:  []string{"5", "4", "6", "3", "2", "1"},
		},
		"price descending": {
			query: Query{Sort: SortPriceDesc},
			want:  []string{"1", "2", "3", "6", "4", "5"},
		},
		"rating descending, catalog order among ties": {
			query: Query{Sort: SortRating},
			want:  []string{"2", "1", "3", "4", "6", "5"},
		},
		"newest first, stable among equals": {
			query: Query{Sort: SortNewest},
			want:  []string{"1", "4", "6", "2", "3", "5"},
		},
		"unknown sort falls back to featured": {
			query: Query{Sort: "banana"},
			want:  []string{"1", "2", "3", "4", "5", "6"},
		},
		"filters compose": {
			query: Query{Category: "fashion", Text: "fit", Price: PriceUnder50},
			want:  []string{"5"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ids(tt.query.Apply(fixture()))
			if !equalIDs(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceBucketBoundsAreInclusive(t *testing.T) {
	in := []Product{
		{ID: "low", Price: 50},
		{ID: "high", Price: 100},
		{ID: "below", Price: 49.99},
		{ID: "above", Price: 100.01},
	}

	got := ids((Query{Price: Price50To100}).Apply(in))
	if !equalIDs(got, []string{"low", "high"}) {
		t.Fatalf("got %v, want [low high]", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := fixture()
	(Query{Sort: SortPriceAsc}).Apply(in)

	if !equalIDs(ids(in), []string{"1", "2", "3", "4", "5", "6"}) {
		t.Fatalf("input order changed: %v", ids(in))
	}
}

func TestFeaturedSortIsStable(t *testing.T) {
	// All-featured and all-plain subsets must each retain catalog order.
	got := ids((Query{}).Apply(fixture()))
	want := []string{"1", "2", "3", "4", "5", "6"}
	if !equalIDs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseQuery(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want Query
	}{
		"empty is the zero query": {
			raw:  "",
			want: Query{},
		},
		"all keys": {
			raw:  "category=electronics&q=wireless&price=50-100&sort=price-desc",
			want: Query{Category: "electronics", Text: "wireless", Price: Price50To100, Sort: SortPriceDesc},
		},
		"unknown keys are ignored": {
			raw:  "category=fashion&view=grid&page=2",
			want: Query{Category: "fashion"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			if err != nil {
				t.Fatalf("parse raw query: %v", err)
			}
			got, err := ParseQuery(values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQueryValuesCanonicalEncoding(t *testing.T) {
	tests := map[string]struct {
		query Query
		want  string
	}{
		"zero query encodes empty": {
			query: Query{},
			want:  "",
		},
		"defaults are omitted": {
			query: Query{Price: PriceAll, Sort: SortFeatured},
			want:  "",
		},
		"set criteria appear": {
			query: Query{Category: "sports", Text: "shoes", Price: Price100To200, Sort: SortRating},
			want:  "category=sports&price=100-200&q=shoes&sort=rating",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.query.Values().Encode(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	q := Query{Category: "electronics", Text: "speaker", Price: Price200Plus, Sort: SortNewest}

	back, err := ParseQuery(q.Values())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != q {
		t.Fatalf("round trip changed the query: %+v != %+v", back, q)
	}
}
