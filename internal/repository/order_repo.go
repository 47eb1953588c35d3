package repository

import (
	"context"

	"connecthub/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderFilters struct {
	BuyerID  int64
	SellerID int64
	Type     string
	Status   string
	Limit    int
	Offset   int
}

// OrderStats feeds the admin bookings dashboard.
type OrderStats struct {
	Total      int64           `json:"total"`
	Pending    int64           `json:"pending"`
	Confirmed  int64           `json:"confirmed"`
	InProgress int64           `json:"in_progress"`
	Completed  int64           `json:"completed"`
	Cancelled  int64           `json:"cancelled"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) DB() *gorm.DB { return r.db }

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Seller").
		Preload("Listing").
		Preload("Review").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetAll(ctx context.Context, f OrderFilters) ([]domain.Order, error) {
	var orders []domain.Order

	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.BuyerID != 0 {
		q = q.Where("buyer_id = ?", f.BuyerID)
	}
	if f.SellerID != 0 {
		q = q.Where("seller_id = ?", f.SellerID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Preload("Listing").Preload("Seller").Preload("Review").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// Stats aggregates status counts and completed revenue over service orders.
func (r *OrderRepository) Stats(ctx context.Context, orderType string) (*OrderStats, error) {
	stats := &OrderStats{Revenue: decimal.Zero}

	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if orderType != "" {
		q = q.Where("type = ?", orderType)
	}
	if err := q.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		column string
		status domain.OrderStatus
		dest   *int64
	}{
		{"pending", domain.OrderPending, &stats.Pending},
		{"confirmed", domain.OrderConfirmed, &stats.Confirmed},
		{"in_progress", domain.OrderInProgress, &stats.InProgress},
		{"completed", domain.OrderCompleted, &stats.Completed},
		{"cancelled", domain.OrderCancelled, &stats.Cancelled},
	}
	for _, c := range counts {
		cq := r.db.WithContext(ctx).Model(&domain.Order{}).Where("status = ?", c.status)
		if orderType != "" {
			cq = cq.Where("type = ?", orderType)
		}
		if err := cq.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var completed []domain.Order
	rq := r.db.WithContext(ctx).Where("status = ?", domain.OrderCompleted)
	if orderType != "" {
		rq = rq.Where("type = ?", orderType)
	}
	if err := rq.Find(&completed).Error; err != nil {
		return nil, err
	}
	for _, o := range completed {
		stats.Revenue = stats.Revenue.Add(o.Total)
	}

	return stats, nil
}
