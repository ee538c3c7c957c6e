package lib

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// IntentIDFromClientSecret extracts the payment intent id from a client
// secret of the form pi_xxx_secret_yyy.
func IntentIDFromClientSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret")
	if !found || id == "" {
		return "", errors.New("malformed client secret")
	}
	return id, nil
}

// StripeConfirmer confirms card payments against the live Stripe API.
type StripeConfirmer struct{}

// ConfirmCardPayment submits the client-collected payment method for
// confirmation. Card billing details travel on the payment method created
// by the frontend; the receipt email is sourced from the main traveler.
func (StripeConfirmer) ConfirmCardPayment(ctx context.Context, clientSecret, paymentMethodID, receiptEmail, returnURL string) (*stripe.PaymentIntent, error) {
	intentId, err := IntentIDFromClientSecret(clientSecret)
	if err != nil {
		return nil, err
	}
	sc := GetStripeClient()
	params := stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
		ReturnURL:     stripe.String(returnURL),
	}
	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}
	return sc.V1PaymentIntents.Confirm(ctx, intentId, &params)
}
