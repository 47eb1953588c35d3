package order

import "connecthub/internal/domain"

type CreateRequest struct {
	ListingID   int64   `json:"listingId" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=PRODUCT SERVICE"`
	ScheduledAt *string `json:"scheduledAt"`
	Notes       string  `json:"notes"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED REFUNDED"`
}

// View decorates an order with the derived cancellable flag so clients never
// re-derive the rule themselves.
type View struct {
	domain.Order
	Cancellable bool `json:"cancellable"`
}

func NewView(o domain.Order) View {
	return View{Order: o, Cancellable: o.Cancellable()}
}

func NewViews(orders []domain.Order) []View {
	out := make([]View, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewView(o))
	}
	return out
}
