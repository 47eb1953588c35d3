package admin

import (
	"context"
	"errors"

	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyBatch   = errors.New("no payouts selected")
)

// Stats is the admin dashboard summary.
type Stats struct {
	Users      int64                  `json:"users"`
	Vendors    int64                  `json:"vendors"`
	Listings   int64                  `json:"listings"`
	Categories int64                  `json:"categories"`
	Bookings   *repository.OrderStats `json:"bookings"`
}

type Service struct {
	db      *gorm.DB
	users   *repository.UserRepository
	orders  *repository.OrderRepository
	payouts *repository.PayoutRepository
}

func NewService(db *gorm.DB, users *repository.UserRepository, orders *repository.OrderRepository, payouts *repository.PayoutRepository) *Service {
	return &Service{db: db, users: users, orders: orders, payouts: payouts}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		model any
		dest  *int64
		where []any
	}{
		{&domain.User{}, &stats.Users, nil},
		{&domain.User{}, &stats.Vendors, []any{"role IN ?", []string{"VENDOR", "SELLER"}}},
		{&domain.Listing{}, &stats.Listings, nil},
		{&domain.Category{}, &stats.Categories, nil},
	}
	for _, c := range counts {
		q := s.db.WithContext(ctx).Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	bookings, err := s.orders.Stats(ctx, string(domain.OrderTypeService))
	if err != nil {
		return nil, err
	}
	stats.Bookings = bookings

	return stats, nil
}

func (s *Service) Users(ctx context.Context, f repository.UserFilters) ([]domain.User, int64, error) {
	users, total, err := s.users.GetAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

func (s *Service) SetUserStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.UpdateStatus(ctx, id, status)
}

func (s *Service) PendingPayouts(ctx context.Context) ([]domain.Payout, error) {
	return s.payouts.GetPending(ctx)
}

// ProcessPayouts settles the selected pending payouts in one transaction.
func (s *Service) ProcessPayouts(ctx context.Context, ids []int64, adminID int64) (int, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyBatch
	}
	return s.payouts.ProcessBatch(ctx, ids, adminID)
}
