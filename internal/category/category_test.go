package category

import (
	"context"
	"strconv"
	"testing"
)

type MockRepository struct {
	categories map[string]*Category
	byName     map[string]*Category
	nextID     int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		categories: make(map[string]*Category),
		byName:     make(map[string]*Category),
		nextID:     1,
	}
}

func (m *MockRepository) Create(ctx context.Context, category *Category) error {
	if _, exists := m.byName[category.Name]; exists {
		return ErrDuplicate
	}
	category.ID = strconv.Itoa(m.nextID)
	m.nextID++
	category.IsActive = true
	m.categories[category.ID] = category
	m.byName[category.Name] = category
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return category, nil
}

func (m *MockRepository) GetByName(ctx context.Context, name string) (*Category, error) {
	category, ok := m.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return category, nil
}

func (m *MockRepository) List(ctx context.Context) ([]*Category, error) {
	var out []*Category
	for _, c := range m.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockRepository) Update(ctx context.Context, category *Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return ErrNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockRepository) Deactivate(ctx context.Context, id string) error {
	category, ok := m.categories[id]
	if !ok {
		return ErrNotFound
	}
	category.IsActive = false
	return nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateCategory_NormalizesName(t *testing.T) {
	service := NewService(NewMockRepository())

	category, err := service.CreateCategory(context.Background(), CreateInput{
		Name: "  Restaurants ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Name != "restaurants" {
		t.Errorf("expected normalized name 'restaurants', got %q", category.Name)
	}
	if category.Color != DefaultColor {
		t.Errorf("expected default color %s, got %s", DefaultColor, category.Color)
	}
}

func TestCreateCategory_DuplicateAfterNormalization(t *testing.T) {
	service := NewService(NewMockRepository())

	if _, err := service.CreateCategory(context.Background(), CreateInput{Name: "electronics"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.CreateCategory(context.Background(), CreateInput{Name: "Electronics"})
	if err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateCategory_UnknownParent(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateCategory(context.Background(), CreateInput{
		Name:     "street food",
		ParentID: "missing",
	})
	if err == nil {
		t.Fatal("expected error for unknown parent category")
	}
}

func TestCreateCategory_ShortName(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateCategory(context.Background(), CreateInput{Name: "x"})
	if err == nil {
		t.Fatal("expected error for too-short name")
	}
}

func TestList_ParentFilter(t *testing.T) {
	service := NewService(NewMockRepository())

	parent, err := service.CreateCategory(context.Background(), CreateInput{Name: "food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateCategory(context.Background(), CreateInput{
		Name:     "street food",
		ParentID: parent.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateCategory(context.Background(), CreateInput{Name: "electronics"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	children, err := service.List(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 1 || children[0].Name != "street food" {
		t.Errorf("expected only the child category, got %d", len(children))
	}
}

func TestGetByID_InactiveHidden(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo)

	category, err := service.CreateCategory(context.Background(), CreateInput{Name: "bakeries"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.GetByID(context.Background(), category.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for deactivated category, got %v", err)
	}
}
