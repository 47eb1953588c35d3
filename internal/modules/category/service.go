package category

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

// StatusFilter values accepted by the list endpoint.
const (
	StatusAll      = "All"
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusFeatured = "Featured"
)

type Service struct {
	repo *repository.CategoryRepository
}

func NewService(repo *repository.CategoryRepository) *Service {
	return &Service{repo: repo}
}

// Filter narrows a fetched collection by a free-text search term and a
// discrete status filter, AND-composed. It is a pure function: the input
// slice is never mutated and the same arguments always give the same result.
// Featured is independent of Active, so an inactive featured category still
// shows up under the Featured filter.
func Filter(cats []domain.Category, searchTerm, statusFilter string) []domain.Category {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]domain.Category, 0, len(cats))
	for _, cat := range cats {
		if term != "" {
			hay := strings.ToLower(cat.Name + " " + cat.Slug + " " + cat.Description)
			if !strings.Contains(hay, term) {
				continue
			}
		}

		switch statusFilter {
		case StatusActive:
			if !cat.Active {
				continue
			}
		case StatusInactive:
			if cat.Active {
				continue
			}
		case StatusFeatured:
			if !cat.Featured {
				continue
			}
		}

		out = append(out, cat)
	}
	return out
}

func (s *Service) List(ctx context.Context, catType string, includeInactive bool, searchTerm, statusFilter string) ([]domain.Category, error) {
	cats, err := s.repo.GetAll(ctx, catType, includeInactive)
	if err != nil {
		return nil, err
	}
	return Filter(cats, searchTerm, statusFilter), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	if existing, err := s.repo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, ErrSlugTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cat := &domain.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
		Type:        domain.CategoryType(req.Type),
		Featured:    req.Featured,
		Active:      active,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Category, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != cat.Slug {
		if existing, lookupErr := s.repo.GetBySlug(ctx, *req.Slug); lookupErr == nil && existing != nil {
			return nil, ErrSlugTaken
		} else if lookupErr != nil && !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return nil, lookupErr
		}
		cat.Slug = *req.Slug
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.Icon != nil {
		cat.Icon = *req.Icon
	}
	if req.Image != nil {
		cat.Image = *req.Image
	}
	if req.Type != nil {
		cat.Type = domain.CategoryType(*req.Type)
	}
	if req.Featured != nil {
		cat.Featured = *req.Featured
	}
	if req.Active != nil {
		cat.Active = *req.Active
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete refuses categories that still have listings attached.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountListings(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasListings
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) SetFeatured(ctx context.Context, id int64, value bool) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.SetFlag(ctx, id, "featured", value)
}

func (s *Service) SetActive(ctx context.Context, id int64, value bool) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.SetFlag(ctx, id, "active", value)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
