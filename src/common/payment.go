package common

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tbs/src/config"
	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/jonboulle/clockwork"
	"github.com/stripe/stripe-go/v82"
)

var ErrNoPaymentSession = errors.New("no payment in progress for this booking")

// PaymentGateway is the travel API's payment surface: intent creation and
// the authoritative post-payment confirmation.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, token string, body types.CreatePaymentRequestBody) (string, error)
	ConfirmPayment(ctx context.Context, token, paymentIntentId string) error
}

// CardConfirmer submits a client-collected payment method to the processor.
type CardConfirmer interface {
	ConfirmCardPayment(ctx context.Context, clientSecret, paymentMethodID, receiptEmail, returnURL string) (*stripe.PaymentIntent, error)
}

// PaymentOrchestrator drives one payment attempt for a finalized booking:
// idle, initializing, awaiting_user_input, confirming, then succeeded or
// failed. Session state is persisted per user so initialize and confirm can
// arrive as separate requests.
type PaymentOrchestrator struct {
	Store    draft.Store
	Payments PaymentGateway
	Cards    CardConfirmer
	Clock    clockwork.Clock
}

// IdempotencyKey derives the processor idempotency key from the booking id
// and the current timestamp. Two calls in the same millisecond collide; the
// key exists to absorb retry-click storms, not to be globally unique.
func IdempotencyKey(bookingId uint, clock clockwork.Clock) string {
	return fmt.Sprintf("booking-%d-%d", bookingId, clock.Now().UnixMilli())
}

// Initialize requests a payment intent for the booking and stores the
// resulting session awaiting the user's card input.
func (o PaymentOrchestrator) Initialize(ctx context.Context, userId, token string, bookingId uint, amount float64) (*models.PaymentSession, error) {
	session := models.PaymentSession{
		Phase:          types.PAYMENT_INITIALIZING,
		BookingID:      bookingId,
		Amount:         amount,
		Currency:       config.GetPaymentCurrency(),
		IdempotencyKey: IdempotencyKey(bookingId, o.Clock),
	}
	secret, err := o.Payments.CreatePayment(ctx, token, types.CreatePaymentRequestBody{
		BookingID:      session.BookingID,
		Amount:         session.Amount,
		Currency:       session.Currency,
		IdempotencyKey: session.IdempotencyKey,
	})
	if err != nil {
		log.Printf("[payment] intent creation failed for booking %d: %s\n", bookingId, err.Error())
		return nil, err
	}
	session.ClientSecret = secret
	session.Phase = types.PAYMENT_AWAITING_USER_INPUT
	if err := o.Store.SaveSession(ctx, userId, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ConfirmOutcome is what the confirm step hands back to the caller: the
// terminal session, where the frontend should navigate, and a warning when
// the backend verification failed after the money already moved.
type ConfirmOutcome struct {
	Phase           types.PaymentPhase `json:"phase"`
	BookingID       uint               `json:"bookingId"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	RedirectTo      string             `json:"redirectTo"`
	Warning         string             `json:"warning,omitempty"`
}

// Confirm submits the payment method for the stored session. On processor
// success the backend confirmation endpoint MUST be called before the flow
// counts as done; if that call fails the success stands (the charge is
// final) and a support warning is attached. Terminal success clears the
// draft and the session.
func (o PaymentOrchestrator) Confirm(ctx context.Context, userId, token, paymentMethodId string) (*ConfirmOutcome, error) {
	session, err := o.Store.GetSession(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session == nil || session.ClientSecret == "" {
		return nil, ErrNoPaymentSession
	}

	receiptEmail := ""
	if d, derr := o.Store.Get(ctx, userId); derr == nil && d.PassengerData != nil {
		receiptEmail = d.PassengerData.Email
	}

	session.Phase = types.PAYMENT_CONFIRMING
	if err := o.Store.SaveSession(ctx, userId, *session); err != nil {
		return nil, err
	}

	returnURL := fmt.Sprintf("%s/booking-cancellation?bookingId=%d", config.GetAppHost(), session.BookingID)
	intent, err := o.Cards.ConfirmCardPayment(ctx, session.ClientSecret, paymentMethodId, receiptEmail, returnURL)
	if err != nil {
		return o.fail(ctx, userId, session, err.Error()), err
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		err := fmt.Errorf("payment not completed, intent status is %s", intent.Status)
		return o.fail(ctx, userId, session, err.Error()), err
	}

	warning := ""
	if err := o.Payments.ConfirmPayment(ctx, token, intent.ID); err != nil {
		// Never walked back: the processor has already moved the money.
		log.Printf("[payment] backend confirmation failed for intent %s: %s\n", intent.ID, err.Error())
		warning = fmt.Sprintf("Payment successful but verification failed: %s. Please contact support.", err.Error())
	}

	completedBookingId := session.BookingID
	if err := o.Store.Clear(ctx, userId); err != nil {
		log.Printf("[payment] could not clear draft for user %s: %s\n", userId, err.Error())
	}
	if err := o.Store.ClearSession(ctx, userId); err != nil {
		log.Printf("[payment] could not clear session for user %s: %s\n", userId, err.Error())
	}

	return &ConfirmOutcome{
		Phase:           types.PAYMENT_SUCCEEDED,
		BookingID:       completedBookingId,
		PaymentIntentID: intent.ID,
		RedirectTo:      fmt.Sprintf("%s/booking-confirmation/%d?paymentIntentId=%s", config.GetAppHost(), completedBookingId, intent.ID),
		Warning:         warning,
	}, nil
}

func (o PaymentOrchestrator) fail(ctx context.Context, userId string, session *models.PaymentSession, reason string) *ConfirmOutcome {
	session.Phase = types.PAYMENT_FAILED
	session.LastError = reason
	if err := o.Store.SaveSession(ctx, userId, *session); err != nil {
		log.Printf("[payment] could not persist failed session for user %s: %s\n", userId, err.Error())
	}
	return &ConfirmOutcome{
		Phase:      types.PAYMENT_FAILED,
		BookingID:  session.BookingID,
		RedirectTo: fmt.Sprintf("%s/booking-cancellation?bookingId=%d", config.GetAppHost(), session.BookingID),
	}
}

// Cancel tears down the payment session before confirmation without
// contacting the server. The booking itself stays pending and retryable.
func (o PaymentOrchestrator) Cancel(ctx context.Context, userId string) error {
	return o.Store.ClearSession(ctx, userId)
}
