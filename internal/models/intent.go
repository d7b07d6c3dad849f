package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseIntent is a single-item reservation used by the buy-now path.
type PurchaseIntent struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customerId"`
	ProductID       uuid.UUID       `json:"productId"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	Currency        string          `json:"currency"`
	ShippingAddress *ShippingInput  `json:"shippingAddress,omitempty"`
	ExpiresAt       time.Time       `json:"expiresAt"`
}

// Expired reports whether the intent can no longer be acted upon at now.
func (p *PurchaseIntent) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Lines views the intent as a one-line cart.
func (p *PurchaseIntent) Lines() []CartLine {

	quantity := p.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return []CartLine{{
		ID:        p.ID,
		ProductID: p.ProductID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  quantity,
	}}
}
