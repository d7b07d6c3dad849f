package models

type GatewayEventStatus string

const (
	GatewayPaymentSucceeded GatewayEventStatus = "succeeded"
	GatewayPaymentFailed    GatewayEventStatus = "failed"
	GatewayPaymentIgnored   GatewayEventStatus = "ignored"
)

// GatewayEvent is the outcome of a verified payment gateway callback.
type GatewayEvent struct {
	EventID         string             `json:"eventId"`
	Type            string             `json:"type"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	SessionID       string             `json:"sessionId,omitempty"`
	Status          GatewayEventStatus `json:"status"`
}

// GatewayPayment is a payment authorised at the gateway before order placement.
type GatewayPayment struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Status       string `json:"status"`
}
