package common

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return string(raw)
}

type fakePaymentGateway struct {
	secret      string
	createErr   error
	confirmErr  error
	createBody  *types.CreatePaymentRequestBody
	confirmedId string
}

func (f *fakePaymentGateway) CreatePayment(ctx context.Context, token string, body types.CreatePaymentRequestBody) (string, error) {
	f.createBody = &body
	return f.secret, f.createErr
}

func (f *fakePaymentGateway) ConfirmPayment(ctx context.Context, token, paymentIntentId string) error {
	f.confirmedId = paymentIntentId
	return f.confirmErr
}

type fakeCardConfirmer struct {
	intent *stripe.PaymentIntent
	err    error
}

func (f fakeCardConfirmer) ConfirmCardPayment(ctx context.Context, clientSecret, paymentMethodID, receiptEmail, returnURL string) (*stripe.PaymentIntent, error) {
	return f.intent, f.err
}

func TestIdempotencyKey(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(at)
	first := IdempotencyKey(42, clock)
	assert.Equal(t, "booking-42-1767225600000", first)

	// Same millisecond, same key: retry storms collapse onto one intent.
	assert.Equal(t, first, IdempotencyKey(42, clock))

	clock.Advance(time.Millisecond)
	assert.NotEqual(t, first, IdempotencyKey(42, clock))
}

func TestInitializeStoresSession(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	gw := &fakePaymentGateway{secret: "pi_123_secret_abc"}
	o := PaymentOrchestrator{Store: store, Payments: gw, Cards: fakeCardConfirmer{}, Clock: testClock()}

	session, err := o.Initialize(ctx, "u1", "token", 42, 550)
	assert.NoError(t, err)
	assert.Equal(t, types.PAYMENT_AWAITING_USER_INPUT, session.Phase)
	assert.Equal(t, "pi_123_secret_abc", session.ClientSecret)
	assert.Equal(t, uint(42), session.BookingID)
	assert.Equal(t, 550.0, gw.createBody.Amount)
	assert.Equal(t, "usd", gw.createBody.Currency)
	assert.NotEmpty(t, gw.createBody.IdempotencyKey)

	stored, err := store.GetSession(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, *session, *stored)
}

func TestInitializeGatewayFailure(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	gw := &fakePaymentGateway{createErr: errors.New("intent creation failed")}
	o := PaymentOrchestrator{Store: store, Payments: gw, Cards: fakeCardConfirmer{}, Clock: testClock()}

	_, err := o.Initialize(ctx, "u1", "token", 42, 550)
	assert.Error(t, err)
	stored, _ := store.GetSession(ctx, "u1")
	assert.Nil(t, stored)
}

func TestConfirmWithoutSession(t *testing.T) {
	o := PaymentOrchestrator{Store: draft.NewMemoryStore(), Payments: &fakePaymentGateway{}, Cards: fakeCardConfirmer{}, Clock: testClock()}
	_, err := o.Confirm(context.Background(), "u1", "token", "pm_1")
	assert.ErrorIs(t, err, ErrNoPaymentSession)
}

func seedSession(t *testing.T, store draft.Store) {
	t.Helper()
	ctx := context.Background()
	assert.NoError(t, store.Save(ctx, "u1", completeDraft()))
	assert.NoError(t, store.SaveSession(ctx, "u1", models.PaymentSession{
		Phase:        types.PAYMENT_AWAITING_USER_INPUT,
		BookingID:    42,
		Amount:       550,
		Currency:     "usd",
		ClientSecret: "pi_123_secret_abc",
	}))
}

func TestConfirmSuccessClearsDraftAndSession(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	seedSession(t, store)

	gw := &fakePaymentGateway{}
	cards := fakeCardConfirmer{intent: &stripe.PaymentIntent{ID: "pi_123", Status: stripe.PaymentIntentStatusSucceeded}}
	o := PaymentOrchestrator{Store: store, Payments: gw, Cards: cards, Clock: testClock()}

	outcome, err := o.Confirm(ctx, "u1", "token", "pm_1")
	assert.NoError(t, err)
	assert.Equal(t, types.PAYMENT_SUCCEEDED, outcome.Phase)
	assert.Equal(t, uint(42), outcome.BookingID)
	assert.Equal(t, "pi_123", outcome.PaymentIntentID)
	assert.Empty(t, outcome.Warning)
	assert.Contains(t, outcome.RedirectTo, "/booking-confirmation/42")
	assert.Contains(t, outcome.RedirectTo, "paymentIntentId=pi_123")
	assert.Equal(t, "pi_123", gw.confirmedId)

	d, _ := store.Get(ctx, "u1")
	assert.True(t, d.IsEmpty())
	session, _ := store.GetSession(ctx, "u1")
	assert.Nil(t, session)
}

func TestConfirmBackendVerificationFailureKeepsSuccess(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	seedSession(t, store)

	gw := &fakePaymentGateway{confirmErr: errors.New("verification timeout")}
	cards := fakeCardConfirmer{intent: &stripe.PaymentIntent{ID: "pi_123", Status: stripe.PaymentIntentStatusSucceeded}}
	o := PaymentOrchestrator{Store: store, Payments: gw, Cards: cards, Clock: testClock()}

	outcome, err := o.Confirm(ctx, "u1", "token", "pm_1")
	assert.NoError(t, err)
	assert.Equal(t, types.PAYMENT_SUCCEEDED, outcome.Phase)
	assert.Contains(t, outcome.Warning, "Payment successful but verification failed")
	assert.Contains(t, outcome.Warning, "verification timeout")

	// The charge is final: the draft is still cleared.
	d, _ := store.Get(ctx, "u1")
	assert.True(t, d.IsEmpty())
}

func TestConfirmProcessorErrorFails(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	seedSession(t, store)

	cards := fakeCardConfirmer{err: errors.New("card declined")}
	o := PaymentOrchestrator{Store: store, Payments: &fakePaymentGateway{}, Cards: cards, Clock: testClock()}

	outcome, err := o.Confirm(ctx, "u1", "token", "pm_1")
	assert.EqualError(t, err, "card declined")
	assert.Equal(t, types.PAYMENT_FAILED, outcome.Phase)
	assert.Contains(t, outcome.RedirectTo, "/booking-cancellation?bookingId=42")

	// Draft survives for a retry; the failed session is kept for inspection.
	d, _ := store.Get(ctx, "u1")
	assert.False(t, d.IsEmpty())
	session, _ := store.GetSession(ctx, "u1")
	assert.Equal(t, types.PAYMENT_FAILED, session.Phase)
	assert.Equal(t, "card declined", session.LastError)
}

func TestConfirmNonSucceededIntentFails(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	seedSession(t, store)

	cards := fakeCardConfirmer{intent: &stripe.PaymentIntent{ID: "pi_123", Status: stripe.PaymentIntentStatusRequiresAction}}
	o := PaymentOrchestrator{Store: store, Payments: &fakePaymentGateway{}, Cards: cards, Clock: testClock()}

	outcome, err := o.Confirm(ctx, "u1", "token", "pm_1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires_action")
	assert.Equal(t, types.PAYMENT_FAILED, outcome.Phase)
}

func TestCancelClearsSessionOnly(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	seedSession(t, store)

	o := PaymentOrchestrator{Store: store, Payments: &fakePaymentGateway{}, Cards: fakeCardConfirmer{}, Clock: testClock()}
	assert.NoError(t, o.Cancel(ctx, "u1"))

	session, _ := store.GetSession(ctx, "u1")
	assert.Nil(t, session)
	d, _ := store.Get(ctx, "u1")
	assert.False(t, d.IsEmpty())
}
