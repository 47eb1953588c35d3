package review

import (
	"context"
	"errors"
	"strings"

	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews *repository.ReviewRepository
}

func NewService(reviews *repository.ReviewRepository) *Service {
	return &Service{reviews: reviews}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrEmptyComment
	}

	rev := &domain.Review{
		ListingID: req.ListingID,
		OrderID:   req.OrderID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    jsonfield.Encode(req.Images),
		Approved:  true,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Update edits rating and comment. Authorization is by the composite
// reviewId+userId key: the caller's id must match both the request and the
// stored author.
func (s *Service) Update(ctx context.Context, callerID int64, req UpdateRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrEmptyComment
	}

	rev, err := s.getOwned(ctx, req.ReviewID, req.UserID, callerID)
	if err != nil {
		return nil, err
	}

	rev.Rating = req.Rating
	rev.Comment = req.Comment
	if err := s.reviews.Update(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, userID, callerID int64) error {
	if _, err := s.getOwned(ctx, reviewID, userID, callerID); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *Service) ListByListing(ctx context.Context, listingID int64, approvedOnly bool) ([]domain.Review, error) {
	return s.reviews.GetByListingID(ctx, listingID, approvedOnly)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.reviews.GetByUserID(ctx, userID)
}

func (s *Service) MarkHelpful(ctx context.Context, reviewID int64) error {
	if _, err := s.get(ctx, reviewID); err != nil {
		return err
	}
	return s.reviews.IncrementHelpful(ctx, reviewID)
}

func (s *Service) Report(ctx context.Context, reviewID int64) error {
	if _, err := s.get(ctx, reviewID); err != nil {
		return err
	}
	return s.reviews.SetFlag(ctx, reviewID, "reported", true)
}

// SetApproved is the admin moderation switch.
func (s *Service) SetApproved(ctx context.Context, reviewID int64, approved bool) error {
	if _, err := s.get(ctx, reviewID); err != nil {
		return err
	}
	return s.reviews.SetFlag(ctx, reviewID, "approved", approved)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Review, error) {
	rev, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rev, nil
}

func (s *Service) getOwned(ctx context.Context, reviewID, userID, callerID int64) (*domain.Review, error) {
	rev, err := s.get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rev.UserID != userID || userID != callerID {
		return nil, ErrNotAuthor
	}
	return rev, nil
}
