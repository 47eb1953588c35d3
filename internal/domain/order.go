package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

type OrderType string

const (
	OrderTypeProduct OrderType = "PRODUCT"
	OrderTypeService OrderType = "SERVICE"
)

type PaymentState string

const (
	PaymentUnpaid   PaymentState = "UNPAID"
	PaymentPaid     PaymentState = "PAID"
	PaymentRefunded PaymentState = "REFUNDED"
)

type Order struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	OrderNumber   string       `json:"order_number" gorm:"uniqueIndex"`
	Type          OrderType    `json:"type" gorm:"index"`
	Status        OrderStatus  `json:"status"`
	PaymentStatus PaymentState `json:"payment_status"`
	PaymentMethod string       `json:"payment_method,omitempty"`

	BuyerID   int64 `json:"buyer_id" gorm:"index"`
	SellerID  int64 `json:"seller_id" gorm:"index"`
	ListingID int64 `json:"listing_id"`

	Price    decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Tax      decimal.Decimal `json:"tax" gorm:"type:decimal(12,2)"`
	Discount decimal.Decimal `json:"discount" gorm:"type:decimal(12,2)"`
	Total    decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CancelNote  string     `json:"cancel_note,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Buyer   *User    `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Seller  *User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Review  *Review  `json:"review,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// Cancellable reports whether a cancel may be issued for the order.
// Only PENDING and CONFIRMED orders can be cancelled; the same rule gates
// the cancel action in every client.
func (o *Order) Cancellable() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed
}

// CanTransition is the legality table for server-side status changes.
func (o *Order) CanTransition(to OrderStatus) bool {
	switch o.Status {
	case OrderPending:
		return to == OrderConfirmed || to == OrderCancelled
	case OrderConfirmed:
		return to == OrderInProgress || to == OrderCancelled
	case OrderInProgress:
		return to == OrderCompleted
	case OrderCompleted:
		return to == OrderRefunded
	default:
		return false
	}
}
