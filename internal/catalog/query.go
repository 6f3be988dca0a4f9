package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/artistry-gallery/artistry/internal/domain"
)

// SortKey selects the gallery ordering.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// Sentinels for "no filter" on the two exact-match filters.
const (
	AllCategories = "All"
	AllArtists    = "all"
)

// Query is one gallery request: three filters applied in order, then a
// stable sort. Apply is pure; the same query over the same catalog always
// yields the same sequence.
type Query struct {
	Category string
	Artist   string
	Search   string
	Sort     SortKey
}

// Apply runs the pipeline over products and returns a fresh slice. The input
// is never mutated; an empty result is a valid outcome the gallery renders
// as its no-results state.
func (q Query) Apply(products []domain.Product) []domain.Product {
	filtered := products

	if q.Category != "" && q.Category != AllCategories {
		filtered = lo.Filter(filtered, func(p domain.Product, _ int) bool {
			return string(p.Category) == q.Category
		})
	}

	if q.Artist != "" && q.Artist != AllArtists {
		filtered = lo.Filter(filtered, func(p domain.Product, _ int) bool {
			return p.ArtistName == q.Artist
		})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered = lo.Filter(filtered, func(p domain.Product, _ int) bool {
			return strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.ArtistName), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle)
		})
	}

	out := make([]domain.Product, len(filtered))
	copy(out, filtered)

	// Collators carry internal buffers and are not safe to share across
	// requests, so build one per call.
	titleCollator := collate.New(language.English)

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() > out[j].EffectivePrice()
		})
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) > 0
		})
	}
	return out
}
