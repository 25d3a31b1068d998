package product

import (
	"context"
	"strconv"
	"testing"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	products  map[string]*Product
	nextID    int
	listCalls int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		products: make(map[string]*Product),
		nextID:   1,
	}
}

func (m *MockRepository) Create(ctx context.Context, product *Product) error {
	product.ID = strconv.Itoa(m.nextID)
	m.nextID++
	product.StockStatus = StockStatusFor(product.StockQuantity)
	product.IsActive = true
	m.products[product.ID] = product
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return product, nil
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]*Product, int64, error) {
	m.listCalls++

	allowed := map[string]bool{}
	for _, id := range filter.ShopIDs {
		allowed[id] = true
	}

	var out []*Product
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if filter.ShopID != "" && p.ShopID != filter.ShopID {
			continue
		}
		if filter.ShopIDs != nil && !allowed[p.ShopID] {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *MockRepository) Update(ctx context.Context, product *Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return ErrNotFound
	}
	product.StockStatus = StockStatusFor(product.StockQuantity)
	m.products[product.ID] = product
	return nil
}

func (m *MockRepository) Deactivate(ctx context.Context, id string) error {
	product, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}
	product.IsActive = false
	return nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestStockStatusFor(t *testing.T) {
	cases := []struct {
		quantity int
		want     string
	}{
		{0, StockOutOfStock},
		{1, StockLimited},
		{5, StockLimited},
		{6, StockInStock},
		{100, StockInStock},
	}

	for _, tc := range cases {
		if got := StockStatusFor(tc.quantity); got != tc.want {
			t.Errorf("StockStatusFor(%d) = %s, want %s", tc.quantity, got, tc.want)
		}
	}
}

func TestCreateProduct_NotShopOwner(t *testing.T) {
	shopRepo := shop.NewMemoryRepository()
	shopService := shop.NewService(shopRepo, nil)
	owned, err := shopService.CreateShop(context.Background(), "owner-123", shop.CreateInput{
		Name:       "Newari Dhaba",
		CategoryID: "cat-restaurant",
		Location:   geo.Point{Lat: 27.6950, Lng: 85.3170},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	service := NewService(NewMockRepository(), shopRepo)

	_, err = service.CreateProduct(context.Background(), "intruder", CreateInput{
		ShopID: owned.ID,
		Name:   "Buff Mo:Mo",
		Price:  150,
	})
	if err != ErrShopNotOwned {
		t.Fatalf("expected ErrShopNotOwned, got %v", err)
	}
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	shopRepo := shop.NewMemoryRepository()
	service := NewService(NewMockRepository(), shopRepo)

	_, err := service.CreateProduct(context.Background(), "owner-123", CreateInput{
		ShopID: "1",
		Name:   "Buff Mo:Mo",
		Price:  -5,
	})
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestSearchRegex_QuotesMetacharacters(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"momo", "momo"},
		{"(", `\(`},
		{"a.c*", `a\.c\*`},
	}

	for _, tc := range cases {
		got := searchRegex(tc.term)
		if got.Pattern != tc.want {
			t.Errorf("searchRegex(%q).Pattern = %q, want %q", tc.term, got.Pattern, tc.want)
		}
		if got.Options != "i" {
			t.Errorf("searchRegex(%q) not case-insensitive", tc.term)
		}
	}
}

func TestList_GeoNarrowShortCircuit(t *testing.T) {
	shopRepo := shop.NewMemoryRepository()
	repo := NewMockRepository()
	service := NewService(repo, shopRepo)

	// No shops anywhere near the south pole: product query must be skipped.
	center := geo.Point{Lat: -89.9, Lng: 0}
	products, total, err := service.List(context.Background(), ListQuery{
		Center:   &center,
		RadiusKm: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Errorf("expected empty result, got %d products", len(products))
	}
	if repo.listCalls != 0 {
		t.Errorf("expected product query to be skipped, got %d calls", repo.listCalls)
	}
}
