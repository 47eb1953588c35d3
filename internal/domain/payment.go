package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated  GatewayPaymentStatus = "created"
	GatewayPaymentPaid     GatewayPaymentStatus = "paid"
	GatewayPaymentFailed   GatewayPaymentStatus = "failed"
	GatewayPaymentDeclined GatewayPaymentStatus = "declined"
)

// GatewayPayment is one pending or settled charge at the external payment
// gateway, created when a vendor confirms a paid plan switch.
type GatewayPayment struct {
	ID             int64                `json:"id" gorm:"primaryKey"`
	VendorID       int64                `json:"vendor_id" gorm:"index"`
	PlanID         PlanID               `json:"plan_id"`
	GatewayOrderID string               `json:"gateway_order_id" gorm:"uniqueIndex"`
	Amount         decimal.Decimal      `json:"amount" gorm:"type:decimal(12,2)"`
	Currency       string               `json:"currency"`
	Status         GatewayPaymentStatus `json:"status"`
	PaymentID      string               `json:"payment_id,omitempty"`
	Signature      string               `json:"-"`
	FailReason     string               `json:"fail_reason,omitempty"`
	PaidAt         *time.Time           `json:"paid_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func (GatewayPayment) TableName() string { return "gateway_payments" }
