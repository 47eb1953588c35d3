package subscription

import (
	"context"
	"errors"
	"time"

	"connecthub/internal/domain"
	"connecthub/internal/modules/payment"
	"connecthub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const currency = "INR"

// Publisher decouples the service from the event hub.
type Publisher interface {
	Publish(eventType string, payload any)
}

type Service struct {
	subs     *repository.SubscriptionRepository
	payments *repository.PaymentRepository
	gateway  *payment.Gateway
	events   Publisher
}

func NewService(subs *repository.SubscriptionRepository, payments *repository.PaymentRepository, gateway *payment.Gateway, events Publisher) *Service {
	return &Service{subs: subs, payments: payments, gateway: gateway, events: events}
}

func (s *Service) Plans(ctx context.Context) ([]*domain.Plan, error) {
	return s.subs.ListPlans(ctx)
}

// Current returns the vendor's active subscription, falling back to a
// virtual free-plan record so the response is never empty.
func (s *Service) Current(ctx context.Context, vendorID int64) (*domain.Subscription, error) {
	sub, err := s.subs.GetActiveByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if sub != nil && sub.IsActive() {
		return sub, nil
	}

	return &domain.Subscription{
		ID:        "virtual-free",
		VendorID:  vendorID,
		PlanID:    domain.PlanFree,
		Status:    domain.SubscriptionActive,
		StartDate: time.Now(),
		AutoRenew: false,
	}, nil
}

// Switch starts a plan change. Free or zero-cost plans activate
// immediately; paid plans create a gateway payment order the client must
// settle. Either way exactly one of the two return values is non-nil.
func (s *Service) Switch(ctx context.Context, vendorID int64, planID domain.PlanID) (*domain.Subscription, *GatewayOrder, error) {
	plan, err := s.subs.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, ErrPlanNotFound
	}

	current, err := s.Current(ctx, vendorID)
	if err != nil {
		return nil, nil, err
	}
	if current.PlanID == plan.ID {
		return nil, nil, ErrSamePlan
	}

	if plan.Price == 0 {
		sub, err := s.activate(ctx, vendorID, plan.ID, current)
		if err != nil {
			return nil, nil, err
		}
		return sub, nil, nil
	}

	gatewayOrderID, err := s.gateway.NewOrderID()
	if err != nil {
		return nil, nil, err
	}

	p := &domain.GatewayPayment{
		VendorID:       vendorID,
		PlanID:         plan.ID,
		GatewayOrderID: gatewayOrderID,
		Amount:         decimal.NewFromFloat(plan.Price),
		Currency:       currency,
		Status:         domain.GatewayPaymentCreated,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, nil, err
	}

	return nil, &GatewayOrder{
		OrderID:        p.ID,
		GatewayOrderID: p.GatewayOrderID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		KeyID:          s.gateway.KeyID,
	}, nil
}

// VerifyAndActivate checks the gateway callback signature. On a match the
// payment is marked paid exactly once and the subscription activates; on a
// mismatch the payment is marked failed and the current subscription stays
// untouched.
func (s *Service) VerifyAndActivate(ctx context.Context, vendorID int64, req VerifyRequest) (*domain.Subscription, error) {
	p, err := s.payments.GetByGatewayOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.VendorID != vendorID {
		return nil, ErrPaymentNotFound
	}

	if !s.gateway.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		if err := s.payments.MarkFailed(ctx, req.GatewayOrderID, "signature mismatch"); err != nil {
			return nil, err
		}
		return nil, ErrBadSignature
	}

	applied, err := s.payments.MarkPaidIdempotent(ctx, req.GatewayOrderID, req.GatewayPaymentID, req.Signature, time.Now())
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrAlreadyProcessed
	}

	current, err := s.Current(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return s.activate(ctx, vendorID, p.PlanID, current)
}

func (s *Service) activate(ctx context.Context, vendorID int64, planID domain.PlanID, current *domain.Subscription) (*domain.Subscription, error) {
	if current != nil && current.ID != "virtual-free" {
		if err := s.subs.Cancel(ctx, current.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	sub := &domain.Subscription{
		ID:        uuid.NewString(),
		VendorID:  vendorID,
		PlanID:    planID,
		Status:    domain.SubscriptionActive,
		StartDate: now,
		AutoRenew: true,
	}
	if planID != domain.PlanFree {
		sub.EndDate.Time = now.AddDate(0, 1, 0)
		sub.EndDate.Valid = true
	}

	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("subscriptionUpdated", map[string]any{
			"vendorId": vendorID,
			"plan":     planID,
		})
	}
	return sub, nil
}
