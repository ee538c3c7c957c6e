package models

import "tbs/src/types"

// PaymentSession is the state of one payment attempt for a finalized
// booking. Persisted beside the draft so the confirm step can run in a
// later request (or from another device) than the initialize step.
type PaymentSession struct {
	Phase           types.PaymentPhase `json:"phase"`
	BookingID       uint               `json:"bookingId"`
	Amount          float64            `json:"amount"`
	Currency        string             `json:"currency"`
	IdempotencyKey  string             `json:"idempotencyKey"`
	ClientSecret    string             `json:"clientSecret,omitempty"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	LastError       string             `json:"lastError,omitempty"`
	Warning         string             `json:"warning,omitempty"`
}
