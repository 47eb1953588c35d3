package repository

import (
	"context"
	"time"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) Create(ctx context.Context, p *domain.Payout) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PayoutRepository) GetPending(ctx context.Context) ([]domain.Payout, error) {
	var payouts []domain.Payout
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.PayoutPending).
		Preload("Seller").
		Order("created_at ASC").
		Find(&payouts).Error
	return payouts, err
}

// ProcessBatch marks the given pending payouts processed atomically. Either
// every payout in the batch flips, or none do.
func (r *PayoutRepository) ProcessBatch(ctx context.Context, ids []int64, adminID int64) (int, error) {
	now := time.Now()
	processed := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Payout{}).
			Where("id IN ? AND status = ?", ids, domain.PayoutPending).
			Updates(map[string]any{
				"status":       domain.PayoutProcessed,
				"processed_at": now,
				"processed_by": adminID,
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		processed = int(res.RowsAffected)
		return nil
	})

	return processed, err
}
