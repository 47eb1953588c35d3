package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "PENDING"
	PayoutProcessed PayoutStatus = "PROCESSED"
	PayoutFailed    PayoutStatus = "FAILED"
)

// Payout is an amount owed to a seller, settled in batches from the admin
// console.
type Payout struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	SellerID    int64           `json:"seller_id" gorm:"index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	Status      PayoutStatus    `json:"status"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	ProcessedBy *int64          `json:"processed_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Seller *User `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}

func (Payout) TableName() string { return "payouts" }
