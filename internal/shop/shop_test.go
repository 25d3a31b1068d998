package shop

import (
	"context"
	"testing"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

func validInput() CreateInput {
	return CreateInput{
		Name:       "Newari Dhaba",
		CategoryID: "cat-restaurant",
		Location:   geo.Point{Lat: 27.6950, Lng: 85.3170},
		Address:    "Jawalakhel, Lalitpur",
	}
}

func TestCreateShop_Success(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	shop, err := service.CreateShop(context.Background(), "owner-123", validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if shop.ID == "" {
		t.Errorf("expected ID to be set")
	}
	if !shop.IsActive {
		t.Errorf("expected new shop to be active")
	}
}

func TestCreateShop_NameTooShort(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	in := validInput()
	in.Name = "ab"

	if _, err := service.CreateShop(context.Background(), "owner-123", in); err == nil {
		t.Fatal("expected error for short name")
	}
}

func TestCreateShop_InvalidCoordinates(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	in := validInput()
	in.Location = geo.Point{Lat: 95, Lng: 85}

	if _, err := service.CreateShop(context.Background(), "owner-123", in); err != geo.ErrInvalidLatitude {
		t.Fatalf("expected ErrInvalidLatitude, got %v", err)
	}
}

func TestGetDetails_InactiveShopHidden(t *testing.T) {
	repo := NewMemoryRepository()
	service := NewService(repo, nil)

	shop, err := service.CreateShop(context.Background(), "owner-123", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteShop(context.Background(), shop.ID, "owner-123", auth.RoleShopkeeper); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.GetDetails(context.Background(), shop.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for deactivated shop, got %v", err)
	}
}

func TestDeleteShop_NotOwner(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	shop, err := service.CreateShop(context.Background(), "owner-123", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteShop(context.Background(), shop.ID, "other-user", auth.RoleShopkeeper); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDeleteShop_AdminOverride(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil)

	shop, err := service.CreateShop(context.Background(), "owner-123", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteShop(context.Background(), shop.ID, "admin-1", auth.RoleAdmin); err != nil {
		t.Fatalf("expected admin to delete, got %v", err)
	}
}

func TestSearchWithinRadius_ExcludesFarShops(t *testing.T) {
	repo := NewMemoryRepository()
	service := NewService(repo, nil)

	near := validInput()
	if _, err := service.CreateShop(context.Background(), "owner-123", near); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	far := validInput()
	far.Name = "Pokhara Lakeside Cafe"
	far.Location = geo.Point{Lat: 28.2096, Lng: 83.9856}
	if _, err := service.CreateShop(context.Background(), "owner-123", far); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	center := geo.Point{Lat: 27.7172, Lng: 85.3240}
	shops, total, err := repo.SearchWithinRadius(context.Background(), center, 5, "", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(shops) != 1 {
		t.Fatalf("expected exactly 1 shop within 5km, got %d", total)
	}
	if shops[0].Name != "Newari Dhaba" {
		t.Errorf("expected the Kathmandu shop, got %s", shops[0].Name)
	}
}

func TestIsOpenAt(t *testing.T) {
	shop := &Shop{
		BusinessHours: map[string]DayHours{
			"monday": {Open: "09:00", Close: "18:00"},
			"sunday": {Closed: true},
		},
	}

	// 2026-08-24 is a Monday.
	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	if !shop.IsOpenAt(monday) {
		t.Error("expected open on Monday noon")
	}

	mondayLate := time.Date(2026, 8, 24, 20, 0, 0, 0, time.UTC)
	if shop.IsOpenAt(mondayLate) {
		t.Error("expected closed on Monday evening")
	}

	sunday := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	if shop.IsOpenAt(sunday) {
		t.Error("expected closed on Sunday")
	}

	// No hours at all: best-effort open.
	bare := &Shop{}
	if !bare.IsOpenAt(monday) {
		t.Error("expected shop without hours to count as open")
	}
}

func TestPageClause(t *testing.T) {
	cases := []struct {
		bound int
		want  string
	}{
		{0, ` ORDER BY id ASC LIMIT $1 OFFSET $2`},
		{1, ` ORDER BY id ASC LIMIT $2 OFFSET $3`},
		{2, ` ORDER BY id ASC LIMIT $3 OFFSET $4`},
	}

	for _, tc := range cases {
		if got := pageClause(tc.bound); got != tc.want {
			t.Errorf("pageClause(%d) = %q, want %q", tc.bound, got, tc.want)
		}
	}
}
