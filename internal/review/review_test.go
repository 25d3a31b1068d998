package review

import (
	"context"
	"strconv"
	"testing"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

type MockRepository struct {
	reviews map[string]*Review
	nextID  int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{reviews: make(map[string]*Review), nextID: 1}
}

func (m *MockRepository) Create(ctx context.Context, review *Review) error {
	for _, existing := range m.reviews {
		if existing.ShopID == review.ShopID && existing.AuthorID == review.AuthorID {
			return ErrDuplicate
		}
	}
	review.ID = strconv.Itoa(m.nextID)
	m.nextID++
	m.reviews[review.ID] = review
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	review, ok := m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return review, nil
}

func (m *MockRepository) ListByShop(ctx context.Context, shopID string, offset, limit int) ([]*Review, int64, error) {
	var out []*Review
	for _, r := range m.reviews {
		if r.ShopID == shopID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *MockRepository) Update(ctx context.Context, review *Review) error {
	if _, ok := m.reviews[review.ID]; !ok {
		return ErrNotFound
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

func (m *MockRepository) Aggregate(ctx context.Context, shopID string) (float64, int, error) {
	sum, count := 0, 0
	for _, r := range m.reviews {
		if r.ShopID == shopID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func newTestShop(t *testing.T, shops *shop.MemoryRepository, ownerID string) *shop.Shop {
	t.Helper()

	shopService := shop.NewService(shops, nil)
	created, err := shopService.CreateShop(context.Background(), ownerID, shop.CreateInput{
		Name:       "Thamel Gadget Store",
		CategoryID: "cat-electronics",
		Location:   geo.Point{Lat: 27.7154, Lng: 85.3123},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return created
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateReview_RecalculatesRating(t *testing.T) {
	shops := shop.NewMemoryRepository()
	target := newTestShop(t, shops, "owner-1")
	service := NewService(NewMockRepository(), shops)

	if _, err := service.CreateReview(context.Background(), "user-1", "sita@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateReview(context.Background(), "user-2", "hari@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 2,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := shops.GetByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.AverageRating != 3.5 {
		t.Errorf("expected average rating 3.5, got %v", updated.AverageRating)
	}
	if updated.ReviewCount != 2 {
		t.Errorf("expected review count 2, got %d", updated.ReviewCount)
	}
}

func TestCreateReview_OnePerAuthor(t *testing.T) {
	shops := shop.NewMemoryRepository()
	target := newTestShop(t, shops, "owner-1")
	service := NewService(NewMockRepository(), shops)

	if _, err := service.CreateReview(context.Background(), "user-1", "sita@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 4,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.CreateReview(context.Background(), "user-1", "sita@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 1,
	})
	if err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateReview_OwnShopRejected(t *testing.T) {
	shops := shop.NewMemoryRepository()
	target := newTestShop(t, shops, "owner-1")
	service := NewService(NewMockRepository(), shops)

	_, err := service.CreateReview(context.Background(), "owner-1", "owner@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 5,
	})
	if err == nil {
		t.Fatal("expected error when reviewing own shop")
	}
}

func TestCreateReview_InvalidRating(t *testing.T) {
	shops := shop.NewMemoryRepository()
	service := NewService(NewMockRepository(), shops)

	for _, rating := range []int{0, 6, -1} {
		if _, err := service.CreateReview(context.Background(), "user-1", "x", CreateInput{
			ShopID: "1",
			Rating: rating,
		}); err == nil {
			t.Errorf("expected error for rating %d", rating)
		}
	}
}

func TestDeleteReview_AdminOverride(t *testing.T) {
	shops := shop.NewMemoryRepository()
	target := newTestShop(t, shops, "owner-1")
	service := NewService(NewMockRepository(), shops)

	review, err := service.CreateReview(context.Background(), "user-1", "sita@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteReview(context.Background(), review.ID, "someone-else", "customer"); err != ErrNotAuthor {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if err := service.DeleteReview(context.Background(), review.ID, "someone-else", auth.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, _ := shops.GetByID(context.Background(), target.ID)
	if updated.ReviewCount != 0 {
		t.Errorf("expected review count reset to 0, got %d", updated.ReviewCount)
	}
}

func TestRespondToReview_OwnerOnly(t *testing.T) {
	shops := shop.NewMemoryRepository()
	target := newTestShop(t, shops, "owner-1")
	service := NewService(NewMockRepository(), shops)

	review, err := service.CreateReview(context.Background(), "user-1", "sita@example.com", CreateInput{
		ShopID: target.ID,
		Rating: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.RespondToReview(context.Background(), review.ID, "user-2", "thanks!"); err != ErrNotShopOwner {
		t.Fatalf("expected ErrNotShopOwner, got %v", err)
	}

	responded, err := service.RespondToReview(context.Background(), review.ID, "owner-1", "thank you for visiting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responded.Response == "" || responded.RespondedAt == nil {
		t.Error("expected response and timestamp to be set")
	}
}
