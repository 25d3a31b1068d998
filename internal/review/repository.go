package review

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("you have already reviewed this shop")
)

type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListByShop(ctx context.Context, shopID string, offset, limit int) ([]*Review, int64, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error

	// Aggregate recomputes the average rating and review count for one shop.
	Aggregate(ctx context.Context, shopID string) (average float64, count int, err error)
}
