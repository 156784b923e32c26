package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/gorilla/schema"
)

// Sort selects the ordering applied after filtering. Anything outside the
// enumerated values behaves as SortFeatured.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortRating    Sort = "rating"
	SortNewest    Sort = "newest"
)

// PriceBucket is a named price range facet.
type PriceBucket string

const (
	PriceAll      PriceBucket = "all"
	PriceUnder50  PriceBucket = "0-50"
	Price50To100  PriceBucket = "50-100"
	Price100To200 PriceBucket = "100-200"
	Price200Plus  PriceBucket = "200+"
)

type priceRange struct {
	Min     float64
	Max     float64
	NoUpper bool
}

var priceRanges = map[PriceBucket]priceRange{
	PriceUnder50:  {Min: 0, Max: 50},
	Price50To100:  {Min: 50, Max: 100},
	Price100To200: {Min: 100, Max: 200},
	Price200Plus:  {Min: 200, NoUpper: true},
}

// Query holds the catalog filter and sort criteria. The zero value means
// "all products, featured first". Criteria are not persisted; the URL query
// string is the canonical representation and a Query is rebuilt from it on
// every listing request.
type Query struct {
	Category string      `schema:"category"`
	Text     string      `schema:"q"`
	Price    PriceBucket `schema:"price"`
	Sort     Sort        `schema:"sort"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// ParseQuery decodes the canonical flat encoding (category, q, price, sort)
// into a Query. Missing keys map to the zero value, i.e. no filter and the
// default sort.
func ParseQuery(values url.Values) (Query, error) {
	var q Query
	if err := queryDecoder.Decode(&q, values); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Values renders the canonical encoding. Defaults (empty filters, "all"
// price, "featured" sort) are omitted so that equivalent queries encode
// identically.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	if q.Price != "" && q.Price != PriceAll {
		v.Set("price", string(q.Price))
	}
	if q.Sort != "" && q.Sort != SortFeatured {
		v.Set("sort", string(q.Sort))
	}
	return v
}

// Apply filters products by the set criteria and orders the result. Filters
// are intersections; the sort is stable, so products that compare equal keep
// their catalog order. An empty result is valid output.
func (q Query) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.matches(p) {
			out = append(out, p)
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}
	return out
}

func (q Query) matches(p Product) bool {
	if q.Category != "" && p.CategorySlug != q.Category {
		return false
	}
	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if r, ok := priceRanges[q.Price]; ok {
		if p.Price < r.Min {
			return false
		}
		if !r.NoUpper && p.Price > r.Max {
			return false
		}
	}
	return true
}
