package shop

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("you do not have permission to modify this shop")
)

// Uploader pushes shop images to object storage and returns public URLs.
type Uploader interface {
	UploadFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Service struct {
	repo     Repository
	uploader Uploader
}

func NewService(repo Repository, uploader Uploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

// CreateInput carries the owner-supplied shop fields.
type CreateInput struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	CategoryID    string              `json:"category_id"`
	Location      geo.Point           `json:"location"`
	Address       string              `json:"address"`
	Phone         string              `json:"phone"`
	LogoURL       string              `json:"logo_url"`
	BusinessHours map[string]DayHours `json:"business_hours"`
}

func (in *CreateInput) validate() error {
	if len(in.Name) < 3 || len(in.Name) > 100 {
		return errors.New("shop name must be between 3 and 100 characters")
	}
	if len(in.Description) > 500 {
		return errors.New("description cannot exceed 500 characters")
	}
	if in.CategoryID == "" {
		return errors.New("category is required")
	}
	return in.Location.Validate()
}

// --------------------------------------------------
// Create shop
// --------------------------------------------------
func (s *Service) CreateShop(ctx context.Context, ownerID string, in CreateInput) (*Shop, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	shop := &Shop{
		OwnerID:       ownerID,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		Location:      in.Location,
		Address:       in.Address,
		Phone:         in.Phone,
		LogoURL:       in.LogoURL,
		BusinessHours: in.BusinessHours,
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// --------------------------------------------------
// Shop details (active only)
// --------------------------------------------------
func (s *Service) GetDetails(ctx context.Context, id string) (*Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shop.IsActive {
		return nil, ErrNotFound
	}
	return shop, nil
}

// --------------------------------------------------
// List shops owned by user
// --------------------------------------------------
func (s *Service) ListMyShops(ctx context.Context, ownerID string) ([]*Shop, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Update shop (owner or admin)
// --------------------------------------------------
func (s *Service) UpdateShop(ctx context.Context, id, userID, role string, in CreateInput) (*Shop, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(shop, userID, role); err != nil {
		return nil, err
	}

	shop.Name = in.Name
	shop.Description = in.Description
	shop.CategoryID = in.CategoryID
	shop.Location = in.Location
	shop.Address = in.Address
	shop.Phone = in.Phone
	shop.LogoURL = in.LogoURL
	shop.BusinessHours = in.BusinessHours

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// --------------------------------------------------
// Delete shop: soft delete, products and reviews stay referable
// --------------------------------------------------
func (s *Service) DeleteShop(ctx context.Context, id, userID, role string) error {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(shop, userID, role); err != nil {
		return err
	}

	return s.repo.Deactivate(ctx, id)
}

// --------------------------------------------------
// Upload shop images (owner only)
// --------------------------------------------------
func (s *Service) UploadImages(
	ctx context.Context,
	shopID, userID string,
	files []*multipart.FileHeader,
) ([]string, error) {

	shop, err := s.repo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	if s.uploader == nil {
		return nil, errors.New("image storage not configured")
	}

	var urls []string
	for _, file := range files {
		key := fmt.Sprintf("shops/%s/%s", shopID, uuid.New().String())
		url, err := s.uploader.UploadFile(ctx, key, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	if err := s.repo.AddImages(ctx, shopID, urls); err != nil {
		return nil, err
	}

	return urls, nil
}

func (s *Service) authorize(shop *Shop, userID, role string) error {
	if shop.OwnerID != userID && role != auth.RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}
