package product

import (
	"context"
	"errors"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

var (
	ErrShopNotOwned = errors.New("shop not found or you do not have permission to manage its products")
)

type Service struct {
	repo  Repository
	shops shop.Repository
}

func NewService(repo Repository, shops shop.Repository) *Service {
	return &Service{repo: repo, shops: shops}
}

type CreateInput struct {
	ShopID        string  `json:"shop_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	CategoryID    string  `json:"category_id"`
	StockQuantity int     `json:"stock_quantity"`
}

func (in *CreateInput) validate() error {
	if in.Name == "" || len(in.Name) > 100 {
		return errors.New("product name must be between 1 and 100 characters")
	}
	if in.Price < 0 {
		return errors.New("price must be a positive number")
	}
	if in.StockQuantity < 0 {
		return errors.New("stock quantity must not be negative")
	}
	if in.ShopID == "" {
		return errors.New("shop is required")
	}
	return nil
}

// --------------------------------------------------
// Create product (shop owner only, shop must be active)
// --------------------------------------------------
func (s *Service) CreateProduct(ctx context.Context, userID string, in CreateInput) (*Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	owned, err := s.shops.GetByID(ctx, in.ShopID)
	if err != nil || !owned.IsActive || owned.OwnerID != userID {
		return nil, ErrShopNotOwned
	}

	product := &Product{
		ShopID:        in.ShopID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		StockQuantity: in.StockQuantity,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListQuery is the public product listing request.
type ListQuery struct {
	Filter   ListFilter
	Center   *geo.Point
	RadiusKm float64
}

// List applies row filters and, when a center and radius are given,
// narrows to products owned by shops within that radius. The narrowing
// runs first; an empty shop set short-circuits without touching the
// product collection.
func (s *Service) List(ctx context.Context, q ListQuery) ([]*Product, int64, error) {
	if q.Center != nil && q.RadiusKm > 0 {
		ids, err := s.shops.IDsWithinRadius(ctx, *q.Center, q.RadiusKm)
		if err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []*Product{}, 0, nil
		}
		q.Filter.ShopIDs = ids
	}

	return s.repo.List(ctx, q.Filter)
}

// --------------------------------------------------
// Update product (shop owner or admin)
// --------------------------------------------------
func (s *Service) UpdateProduct(ctx context.Context, id, userID, role string, in CreateInput) (*Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, product.ShopID, userID, role); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.StockQuantity = in.StockQuantity

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// --------------------------------------------------
// Delete product: soft delete
// --------------------------------------------------
func (s *Service) DeleteProduct(ctx context.Context, id, userID, role string) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, product.ShopID, userID, role); err != nil {
		return err
	}

	return s.repo.Deactivate(ctx, id)
}

func (s *Service) authorize(ctx context.Context, shopID, userID, role string) error {
	if role == auth.RoleAdmin {
		return nil
	}
	owned, err := s.shops.GetByID(ctx, shopID)
	if err != nil || owned.OwnerID != userID {
		return ErrShopNotOwned
	}
	return nil
}
