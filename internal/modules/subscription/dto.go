package subscription

import "github.com/shopspring/decimal"

type SwitchRequest struct {
	PlanID string `json:"planId" binding:"required,oneof=free starter professional enterprise"`
}

// GatewayOrder is handed to the client to complete a paid plan switch at
// the payment provider.
type GatewayOrder struct {
	OrderID        int64           `json:"orderId"`
	GatewayOrderID string          `json:"gatewayOrderId"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	KeyID          string          `json:"keyId"`
}

type VerifyRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}
