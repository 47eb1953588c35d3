package payment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Gateway holds the key pair for the external payment provider. Orders are
// created locally; the client completes the charge against the provider and
// posts back {orderId, paymentId, signature} for verification.
type Gateway struct {
	KeyID  string
	secret string
}

func NewGateway(keyID, secret string) *Gateway {
	return &Gateway{KeyID: keyID, secret: secret}
}

// NewOrderID mints a gateway order handle. The handle is looked up uniquely
// on verify, so an entropy failure must surface rather than repeat an id.
func (g *Gateway) NewOrderID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("gateway order id: %w", err)
	}
	return "order_" + hex.EncodeToString(b), nil
}

// Sign computes the provider's callback signature:
// HMAC-SHA256("orderId|paymentId", secret).
func (g *Gateway) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(g.secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a callback signature in constant time.
func (g *Gateway) Verify(orderID, paymentID, signature string) bool {
	expected := g.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
