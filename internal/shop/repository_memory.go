package shop

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development. Distance checks use the haversine formula, so radius
// behavior matches the document store.
type MemoryRepository struct {
	shops  map[string]*Shop
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		shops:  make(map[string]*Shop),
		nextID: 1,
	}
}

func (m *MemoryRepository) Create(ctx context.Context, shop *Shop) error {
	shop.ID = strconv.Itoa(m.nextID)
	m.nextID++
	shop.IsActive = true
	shop.CreatedAt = time.Now()
	m.shops[shop.ID] = shop
	return nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id string) (*Shop, error) {
	shop, ok := m.shops[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *shop
	return &copied, nil
}

func (m *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Shop, error) {
	var out []*Shop
	for _, s := range m.shops {
		if s.OwnerID == ownerID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryRepository) Update(ctx context.Context, shop *Shop) error {
	if _, ok := m.shops[shop.ID]; !ok {
		return ErrNotFound
	}
	m.shops[shop.ID] = shop
	return nil
}

func (m *MemoryRepository) Deactivate(ctx context.Context, id string) error {
	shop, ok := m.shops[id]
	if !ok {
		return ErrNotFound
	}
	shop.IsActive = false
	return nil
}

func (m *MemoryRepository) SearchWithinRadius(
	ctx context.Context,
	center geo.Point,
	radiusKm float64,
	categoryID string,
	offset, limit int,
) ([]*Shop, int64, error) {

	var matched []*Shop
	for _, s := range m.shops {
		if !s.IsActive {
			continue
		}
		if categoryID != "" && s.CategoryID != categoryID {
			continue
		}
		if geo.Haversine(center, s.Location) <= radiusKm {
			matched = append(matched, s)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MemoryRepository) IDsWithinRadius(ctx context.Context, center geo.Point, radiusKm float64) ([]string, error) {
	shops, _, err := m.SearchWithinRadius(ctx, center, radiusKm, "", 0, len(m.shops))
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (m *MemoryRepository) UpdateRating(ctx context.Context, shopID string, average float64, count int) error {
	shop, ok := m.shops[shopID]
	if !ok {
		return ErrNotFound
	}
	shop.AverageRating = average
	shop.ReviewCount = count
	return nil
}

func (m *MemoryRepository) AddImages(ctx context.Context, shopID string, urls []string) error {
	shop, ok := m.shops[shopID]
	if !ok {
		return ErrNotFound
	}
	shop.Images = append(shop.Images, urls...)
	return nil
}
