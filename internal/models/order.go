package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type CustomerContact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateOrderRequest is the cart checkout order-placement payload.
type CreateOrderRequest struct {
	CartID          uuid.UUID       `json:"cartId"`
	Items           []OrderItem     `json:"items"`
	Contact         CustomerContact `json:"contact"`
	ShippingAddress Address         `json:"shippingAddress"`
	BillingAddress  Address         `json:"billingAddress"`
	ShippingMethod  ShippingMethod  `json:"shippingMethod"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentRef      string          `json:"paymentRef,omitempty"`
	Totals          OrderTotals     `json:"totals"`
}

type OrderConfirmation struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

type CompletePurchaseRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
