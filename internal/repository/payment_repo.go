package repository

import (
	"context"
	"time"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.GatewayPayment, error) {
	var p domain.GatewayPayment
	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", gatewayOrderID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaidIdempotent records a settled payment exactly once. Returns false
// when the payment was already paid (duplicate callback).
func (r *PaymentRepository) MarkPaidIdempotent(ctx context.Context, gatewayOrderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("gateway_order_id = ? AND status <> ?", gatewayOrderID, domain.GatewayPaymentPaid).
		Updates(map[string]any{
			"status":     domain.GatewayPaymentPaid,
			"payment_id": paymentID,
			"signature":  signature,
			"paid_at":    paidAt,
			"updated_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, gatewayOrderID, reason string) error {
	return r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("gateway_order_id = ?", gatewayOrderID).
		Updates(map[string]any{
			"status":      domain.GatewayPaymentFailed,
			"fail_reason": reason,
			"updated_at":  time.Now(),
		}).Error
}
