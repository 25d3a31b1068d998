package search

import (
	"context"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

// Aggregator serves product-led shop search against the catalog mirror.
// The mirror's client cannot express a join, so the lookup runs in two
// phases: matching products resolve to an owning-shop id set, then the
// shop table is queried restricted to that set. Every shop returned owns
// at least one product matching the query.
type Aggregator struct {
	products CatalogProducts
	shops    CatalogShops
}

func NewAggregator(products CatalogProducts, shops CatalogShops) *Aggregator {
	return &Aggregator{products: products, shops: shops}
}

func (a *Aggregator) SearchByProduct(
	ctx context.Context,
	query, categoryName string,
	page, limit int,
) ([]*shop.Shop, int64, error) {

	ids, err := a.products.SearchShopIDs(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	// Nothing matched: skip the shop query entirely.
	if len(ids) == 0 {
		return []*shop.Shop{}, 0, nil
	}

	total, err := a.shops.CountByIDs(ctx, ids, categoryName)
	if err != nil {
		return nil, 0, err
	}

	shops, err := a.shops.ListByIDs(ctx, ids, categoryName, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	return Dedupe(shops), total, nil
}
