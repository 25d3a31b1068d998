package shop

import (
	"context"
	"errors"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

var ErrNotFound = errors.New("shop not found")

// Repository is the primary-store contract for shops.
type Repository interface {
	Create(ctx context.Context, shop *Shop) error
	GetByID(ctx context.Context, id string) (*Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Shop, error)
	Update(ctx context.Context, shop *Shop) error
	Deactivate(ctx context.Context, id string) error

	// SearchWithinRadius returns active shops whose point lies within
	// radiusKm of center, newest first, plus the total match count.
	SearchWithinRadius(
		ctx context.Context,
		center geo.Point,
		radiusKm float64,
		categoryID string,
		offset, limit int,
	) ([]*Shop, int64, error)

	// IDsWithinRadius resolves just the ids, used to narrow product
	// queries by location.
	IDsWithinRadius(ctx context.Context, center geo.Point, radiusKm float64) ([]string, error)

	// UpdateRating stores a recomputed review aggregate.
	UpdateRating(ctx context.Context, shopID string, average float64, count int) error

	AddImages(ctx context.Context, shopID string, urls []string) error
}
