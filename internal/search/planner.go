package search

import (
	"context"
	"log"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

// Fallback scan bound: at most fallbackMaxPages batches of
// fallbackBatchSize rows are pulled from the catalog mirror. Shops beyond
// that bound are silently out of reach on the fallback path; a recall
// trade-off, not an error.
const (
	fallbackBatchSize = 500
	fallbackMaxPages  = 20
)

type planState int

const (
	statePrimary planState = iota
	stateFallback
)

// Planner answers radius searches. The primary store serves them from its
// geospatial index; if it is unreachable the planner transitions to the
// catalog mirror exactly once, narrowing rows by distance client-side.
// Validation failures never trigger the transition.
type Planner struct {
	primary PrimaryStore
	catalog CatalogShops
}

func NewPlanner(primary PrimaryStore, catalog CatalogShops) *Planner {
	return &Planner{primary: primary, catalog: catalog}
}

func (p *Planner) Search(ctx context.Context, f Filter) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	state := statePrimary
	offset := (f.Page - 1) * f.Limit

	shops, total, err := p.primary.SearchWithinRadius(ctx, f.Center, f.RadiusKm, f.Category, offset, f.Limit)
	if err != nil {
		log.Printf("primary store search failed (lat=%.4f lng=%.4f radius=%.1fkm category=%q): %v",
			f.Center.Lat, f.Center.Lng, f.RadiusKm, f.Category, err)

		state = stateFallback
		shops, total, err = p.searchFallback(ctx, f)
		if err != nil {
			log.Printf("fallback store search failed (lat=%.4f lng=%.4f radius=%.1fkm): %v",
				f.Center.Lat, f.Center.Lng, f.RadiusKm, err)
			return nil, ErrSearchUnavailable
		}
	}

	if shops == nil {
		shops = []*shop.Shop{}
	}

	result := &Result{
		Shops:  shops,
		Total:  total,
		Page:   f.Page,
		Limit:  f.Limit,
		Source: "primary",
	}
	if state == stateFallback {
		result.Source = "fallback"
	}
	return result, nil
}

// searchFallback pages through the catalog mirror in id order, keeps the
// rows inside the radius, and paginates the narrowed set. Ordering stays
// id-ascending; the mirror has no geospatial operator and no recency
// column worth trusting.
func (p *Planner) searchFallback(ctx context.Context, f Filter) ([]*shop.Shop, int64, error) {
	var within []*shop.Shop
	for page := 0; page < fallbackMaxPages; page++ {
		batch, err := p.catalog.ListPage(ctx, f.Category, page*fallbackBatchSize, fallbackBatchSize)
		if err != nil {
			return nil, 0, err
		}
		within = append(within, WithinRadius(batch, f.Center, f.RadiusKm)...)
		if len(batch) < fallbackBatchSize {
			break
		}
	}

	total := int64(len(within))
	offset := (f.Page - 1) * f.Limit
	if offset >= len(within) {
		return []*shop.Shop{}, total, nil
	}
	end := offset + f.Limit
	if end > len(within) {
		end = len(within)
	}
	return within[offset:end], total, nil
}
