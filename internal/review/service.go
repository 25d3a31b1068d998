package review

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

var (
	ErrNotAuthor    = errors.New("you can only modify your own reviews")
	ErrNotShopOwner = errors.New("only the shop owner can respond to reviews")
)

type Service struct {
	repo  Repository
	shops shop.Repository
}

func NewService(repo Repository, shops shop.Repository) *Service {
	return &Service{repo: repo, shops: shops}
}

type CreateInput struct {
	ShopID  string `json:"shop_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (in *CreateInput) validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if len(in.Comment) > 1000 {
		return errors.New("comment must not exceed 1000 characters")
	}
	return nil
}

// --------------------------------------------------
// Create review: one per (shop, author)
// --------------------------------------------------
func (s *Service) CreateReview(ctx context.Context, authorID, authorName string, in CreateInput) (*Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	target, err := s.shops.GetByID(ctx, in.ShopID)
	if err != nil || !target.IsActive {
		return nil, shop.ErrNotFound
	}
	if target.OwnerID == authorID {
		return nil, errors.New("you cannot review your own shop")
	}

	review := &Review{
		ShopID:     in.ShopID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.recalcRating(ctx, in.ShopID); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) ListByShop(ctx context.Context, shopID string, offset, limit int) ([]*Review, int64, error) {
	return s.repo.ListByShop(ctx, shopID, offset, limit)
}

// --------------------------------------------------
// Update review (author only)
// --------------------------------------------------
func (s *Service) UpdateReview(ctx context.Context, id, authorID string, in CreateInput) (*Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	review.Rating = in.Rating
	review.Comment = in.Comment

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := s.recalcRating(ctx, review.ShopID); err != nil {
		return nil, err
	}

	return review, nil
}

// --------------------------------------------------
// Delete review (author or admin)
// --------------------------------------------------
func (s *Service) DeleteReview(ctx context.Context, id, userID, role string) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.AuthorID != userID && role != auth.RoleAdmin {
		return ErrNotAuthor
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return s.recalcRating(ctx, review.ShopID)
}

// --------------------------------------------------
// Owner response
// --------------------------------------------------
func (s *Service) RespondToReview(ctx context.Context, id, userID, response string) (*Review, error) {
	if response == "" || len(response) > 1000 {
		return nil, errors.New("response must be between 1 and 1000 characters")
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := s.shops.GetByID(ctx, review.ShopID)
	if err != nil || target.OwnerID != userID {
		return nil, ErrNotShopOwner
	}

	now := time.Now()
	review.Response = response
	review.RespondedAt = &now

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// recalcRating pushes the current review aggregate onto the shop record,
// rounded to one decimal.
func (s *Service) recalcRating(ctx context.Context, shopID string) error {
	average, count, err := s.repo.Aggregate(ctx, shopID)
	if err != nil {
		return err
	}
	rounded := math.Round(average*10) / 10
	return s.shops.UpdateRating(ctx, shopID, rounded, count)
}
