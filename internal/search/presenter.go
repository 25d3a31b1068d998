package search

import (
	"sort"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

// PresentOptions are the page-level refinements not pushed down to the
// query layer.
type PresentOptions struct {
	MinRating float64
	OpenNow   bool
	Center    *geo.Point

	// SortByDistance reorders the page nearest-first. Off by default:
	// the query layer's ordering (recency on the primary path) carries
	// through, with distance as an annotation only.
	SortByDistance bool

	// Now anchors open-now checks; zero means time.Now().
	Now time.Time
}

// Present deduplicates a page of shops, applies the minimum-rating and
// open-now refinements, and, when a center is known, annotates each shop
// with its distance. Re-sorting by that distance is opt-in; the incoming
// order is the tie-break for equal distances.
func Present(shops []*shop.Shop, opts PresentOptions) []*shop.Shop {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	out := make([]*shop.Shop, 0, len(shops))
	for _, s := range Dedupe(shops) {
		if s.AverageRating < opts.MinRating {
			continue
		}
		if opts.OpenNow && !s.IsOpenAt(now) {
			continue
		}
		out = append(out, s)
	}

	if opts.Center != nil {
		for _, s := range out {
			d := geo.Haversine(*opts.Center, s.Location)
			s.Distance = &d
		}
		if opts.SortByDistance {
			sort.SliceStable(out, func(i, j int) bool {
				return *out[i].Distance < *out[j].Distance
			})
		}
	}

	return out
}

// Dedupe keeps the first occurrence of each shop id. Guards against a
// shop arriving from both the direct and the product-led path of a merged
// result set.
func Dedupe(shops []*shop.Shop) []*shop.Shop {
	seen := make(map[string]bool, len(shops))
	out := make([]*shop.Shop, 0, len(shops))
	for _, s := range shops {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

// WithinRadius keeps the shops whose point lies within radiusKm of
// center, by great-circle distance. Used to narrow catalog-mirror rows,
// which arrive without any server-side radius filtering.
func WithinRadius(shops []*shop.Shop, center geo.Point, radiusKm float64) []*shop.Shop {
	out := make([]*shop.Shop, 0, len(shops))
	for _, s := range shops {
		if geo.Haversine(center, s.Location) <= radiusKm {
			out = append(out, s)
		}
	}
	return out
}
