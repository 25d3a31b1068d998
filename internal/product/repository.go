package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// ListFilter narrows a primary-store product listing. ShopIDs, when
// non-nil, restricts to a resolved identifier set (location narrowing).
type ListFilter struct {
	CategoryID string
	ShopID     string
	ShopIDs    []string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
	Search     string
	Offset     int
	Limit      int
}

// Repository is the primary-store contract for products.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
	Update(ctx context.Context, product *Product) error
	Deactivate(ctx context.Context, id string) error
}
