package listing

import (
	"context"
	"errors"

	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	listings *repository.ListingRepository
}

func NewService(listings *repository.ListingRepository) *Service {
	return &Service{listings: listings}
}

func (s *Service) Create(ctx context.Context, vendorID int64, req CreateRequest) (*domain.Listing, error) {
	if len(req.Images) > MaxImages {
		return nil, ErrTooManyImages
	}

	l := &domain.Listing{
		VendorID:    vendorID,
		CategoryID:  req.CategoryID,
		Kind:        domain.CategoryType(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      jsonfield.Encode(req.Images),
		Tags:        jsonfield.Encode(req.Tags),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		City:        req.City,
		Active:      true,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Listing, error) {
	return s.listings.GetByVendorID(ctx, vendorID)
}

// Update merges the surviving remote image URLs with the newly uploaded
// ones. The merged set is capped at MaxImages; a sixth image is rejected,
// never truncated. Latitude and longitude are stored even when the address
// fields stay empty.
func (s *Service) Update(ctx context.Context, id, callerID int64, callerRole domain.UserRole, req UpdateRequest) (*domain.Listing, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if callerRole != domain.RoleAdmin && l.VendorID != callerID {
		return nil, ErrNotOwner
	}

	if req.KeepImages != nil || req.NewImages != nil {
		merged := append(append([]string{}, req.KeepImages...), req.NewImages...)
		if len(merged) > MaxImages {
			return nil, ErrTooManyImages
		}
		l.Images = jsonfield.Encode(merged)
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.Tags != nil {
		l.Tags = jsonfield.Encode(*req.Tags)
	}
	if req.Latitude != nil {
		l.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		l.Longitude = req.Longitude
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.City != nil {
		l.City = *req.City
	}
	if req.Active != nil {
		l.Active = *req.Active
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
