package search

import (
	"context"
	"errors"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/product"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

// MaxRadiusKm bounds how wide a radius search may reach.
const MaxRadiusKm = 50

// ErrSearchUnavailable means both stores failed; distinct from an empty
// result so callers can tell "no matches" from "search down".
var ErrSearchUnavailable = errors.New("search unavailable")

// PrimaryStore is the geospatially indexed shop store.
type PrimaryStore interface {
	SearchWithinRadius(
		ctx context.Context,
		center geo.Point,
		radiusKm float64,
		categoryID string,
		offset, limit int,
	) ([]*shop.Shop, int64, error)
}

// CatalogShops reads the secondary relational shop mirror. It offers row
// filters only; radius narrowing on rows from this store is client-side.
type CatalogShops interface {
	ListPage(ctx context.Context, categoryName string, offset, limit int) ([]*shop.Shop, error)
	ListByIDs(ctx context.Context, ids []int64, categoryName string, offset, limit int) ([]*shop.Shop, error)
	CountByIDs(ctx context.Context, ids []int64, categoryName string) (int64, error)
}

// CatalogProducts reads the secondary relational product mirror.
type CatalogProducts interface {
	SearchShopIDs(ctx context.Context, nameQuery string) ([]int64, error)
	ListByShop(ctx context.Context, shopID int64, nameQuery string) ([]product.CatalogProduct, error)
}

// Filter is the ephemeral radius-search request. Category matches the
// primary store's category id and the catalog mirror's category label,
// whichever path ends up serving the call.
type Filter struct {
	Center    geo.Point
	RadiusKm  float64
	Category  string
	MinRating float64
	OpenNow   bool
	Page      int
	Limit     int
}

// Validate rejects malformed parameters before any store is touched.
// A zero radius is legal: it matches only shops exactly at the center.
func (f *Filter) Validate() error {
	if err := f.Center.Validate(); err != nil {
		return err
	}
	if f.RadiusKm < 0 || f.RadiusKm > MaxRadiusKm {
		return errors.New("radius must be between 0 and 50 kilometers")
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return errors.New("minRating must be between 0 and 5")
	}
	if f.Page < 1 {
		return errors.New("page must be at least 1")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return errors.New("limit must be between 1 and 100")
	}
	return nil
}

// Result is one page of matched shops.
type Result struct {
	Shops []*shop.Shop
	Total int64
	Page  int
	Limit int

	// Source names the store that served the call: "primary" or "fallback".
	Source string
}
