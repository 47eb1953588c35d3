package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// taxRate applies to the listing price when an order is placed.
var taxRate = decimal.NewFromFloat(0.18)

type Service struct {
	orders   *repository.OrderRepository
	listings *repository.ListingRepository
	events   Publisher
}

// Publisher decouples the service from the event hub.
type Publisher interface {
	Publish(eventType string, payload any)
}

func NewService(orders *repository.OrderRepository, listings *repository.ListingRepository, events Publisher) *Service {
	return &Service{orders: orders, listings: listings, events: events}
}

func (s *Service) Create(ctx context.Context, buyerID int64, req CreateRequest) (*domain.Order, error) {
	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingGone
		}
		return nil, err
	}

	price := decimal.NewFromFloat(listing.Price)
	tax := price.Mul(taxRate).Round(2)

	o := &domain.Order{
		OrderNumber:   newOrderNumber(),
		Type:          domain.OrderType(req.Type),
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentUnpaid,
		BuyerID:       buyerID,
		SellerID:      listing.VendorID,
		ListingID:     listing.ID,
		Price:         price,
		Tax:           tax,
		Discount:      decimal.Zero,
		Total:         price.Add(tax),
	}

	if req.ScheduledAt != nil && *req.ScheduledAt != "" {
		at, parseErr := time.Parse(time.RFC3339, *req.ScheduledAt)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid scheduledAt: %w", parseErr)
		}
		o.ScheduledAt = &at
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	s.publish(o)
	return o, nil
}

// List returns the requester's orders. Admins may scope by any buyer.
func (s *Service) List(ctx context.Context, f repository.OrderFilters) ([]domain.Order, error) {
	return s.orders.GetAll(ctx, f)
}

// Get enforces ownership: only the buyer, the seller or an admin may read an
// order.
func (s *Service) Get(ctx context.Context, id, requesterID int64, requesterRole domain.UserRole) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if requesterRole != domain.RoleAdmin && o.BuyerID != requesterID && o.SellerID != requesterID {
		return nil, ErrNotOwner
	}
	return o, nil
}

// Cancel moves a PENDING or CONFIRMED order to CANCELLED. Any other status
// is refused, server-side, regardless of what the client rendered.
func (s *Service) Cancel(ctx context.Context, id, requesterID int64, requesterRole domain.UserRole, reason string) (*domain.Order, error) {
	o, err := s.Get(ctx, id, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if !o.Cancellable() {
		return nil, ErrNotCancellable
	}

	now := time.Now()
	o.Status = domain.OrderCancelled
	o.CancelledAt = &now
	o.CancelNote = reason

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	s.publish(o)
	return o, nil
}

// UpdateStatus applies an admin or seller transition through the legality
// table.
func (s *Service) UpdateStatus(ctx context.Context, id, requesterID int64, requesterRole domain.UserRole, to domain.OrderStatus) (*domain.Order, error) {
	o, err := s.Get(ctx, id, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if !o.CanTransition(to) {
		return nil, ErrBadTransition
	}

	o.Status = to
	now := time.Now()
	switch to {
	case domain.OrderCompleted:
		o.CompletedAt = &now
	case domain.OrderCancelled:
		o.CancelledAt = &now
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	s.publish(o)
	return o, nil
}

// Bookings feeds the admin dashboard: service orders plus aggregate stats.
func (s *Service) Bookings(ctx context.Context, status string) ([]domain.Order, *repository.OrderStats, error) {
	orders, err := s.orders.GetAll(ctx, repository.OrderFilters{
		Type:   string(domain.OrderTypeService),
		Status: status,
	})
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.orders.Stats(ctx, string(domain.OrderTypeService))
	if err != nil {
		return nil, nil, err
	}
	return orders, stats, nil
}

func (s *Service) publish(o *domain.Order) {
	if s.events != nil {
		s.events.Publish("orderUpdated", map[string]any{
			"orderId": o.ID,
			"status":  o.Status,
		})
	}
}

// newOrderNumber backs a uniqueIndex column, so the suffix must not depend
// on the clock: concurrent creates may share a timestamp.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
