package repository

import (
	"context"
	"errors"
	"time"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	var plans []*domain.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) GetPlanByID(ctx context.Context, id domain.PlanID) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepository) GetActiveByVendorID(ctx context.Context, vendorID int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ?", vendorID, domain.SubscriptionActive).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) Cancel(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     domain.SubscriptionCancelled,
			"updated_at": time.Now(),
		}).Error
}

// ExpireOld flips active subscriptions whose end date has passed.
func (r *SubscriptionRepository) ExpireOld(ctx context.Context) (int, error) {
	res := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", domain.SubscriptionActive, time.Now()).
		Update("status", domain.SubscriptionExpired)
	return int(res.RowsAffected), res.Error
}
