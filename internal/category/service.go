package category

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ParentID    string `json:"parent_id"`
}

func (in *CreateInput) validate() error {
	if len(in.Name) < 2 || len(in.Name) > 50 {
		return errors.New("category name must be between 2 and 50 characters")
	}
	return nil
}

// CreateCategory stores a new category. Names are normalized to
// lowercase so "Restaurants" and "restaurants" collide on the unique
// index rather than coexisting.
func (s *Service) CreateCategory(ctx context.Context, in CreateInput) (*Category, error) {
	in.Name = strings.ToLower(strings.TrimSpace(in.Name))
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.ParentID != "" {
		if _, err := s.repo.GetByID(ctx, in.ParentID); err != nil {
			return nil, errors.New("parent category not found")
		}
	}

	color := in.Color
	if color == "" {
		color = DefaultColor
	}

	category := &Category{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       color,
		ParentID:    in.ParentID,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, ErrNotFound
	}
	return category, nil
}

// List returns active categories, optionally only the children of one
// parent.
func (s *Service) List(ctx context.Context, parentID string) ([]*Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if parentID == "" {
		return categories, nil
	}

	children := make([]*Category, 0, len(categories))
	for _, c := range categories {
		if c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CreateInput) (*Category, error) {
	in.Name = strings.ToLower(strings.TrimSpace(in.Name))
	if err := in.validate(); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Description = in.Description
	category.Icon = in.Icon
	if in.Color != "" {
		category.Color = in.Color
	}
	category.ParentID = in.ParentID

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
