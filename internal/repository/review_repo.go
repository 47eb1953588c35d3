package repository

import (
	"context"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rev domain.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) GetByListingID(ctx context.Context, listingID int64, approvedOnly bool) ([]domain.Review, error) {
	var reviews []domain.Review
	q := r.db.WithContext(ctx).Where("listing_id = ?", listingID)
	if approvedOnly {
		q = q.Where("approved = ?", true)
	}
	err := q.Preload("User").Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Update(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}

func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", id).
		Update("helpful", gorm.Expr("helpful + 1")).Error
}

func (r *ReviewRepository) SetFlag(ctx context.Context, id int64, column string, value bool) error {
	return r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", id).
		Update(column, value).Error
}
