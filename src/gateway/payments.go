package gateway

import (
	"context"
	"errors"
	"net/http"

	"tbs/src/types"

	"github.com/tidwall/gjson"
)

type PaymentsClient struct{}

func NewPaymentsClient() PaymentsClient {
	return PaymentsClient{}
}

// CreatePayment requests a payment intent for the booking and returns the
// client secret the card form binds to.
func (PaymentsClient) CreatePayment(ctx context.Context, token string, body types.CreatePaymentRequestBody) (string, error) {
	payload, err := doJSON(ctx, http.MethodPost, "/Stripe/create-payment", token, body)
	if err != nil {
		return "", err
	}
	secret := gjson.GetBytes(payload, "clientSecret")
	if !secret.Exists() {
		secret = gjson.GetBytes(payload, "data.clientSecret")
	}
	if secret.String() == "" {
		return "", errors.New("no client secret in payment response")
	}
	return secret.String(), nil
}

// ConfirmPayment reports a processor-confirmed intent back to the travel
// API. This is the authoritative flip of the booking to Confirmed.
func (PaymentsClient) ConfirmPayment(ctx context.Context, token, paymentIntentId string) error {
	_, err := doJSON(ctx, http.MethodPost, "/Stripe/ConfirmPayment", token, map[string]string{
		"paymentIntentId": paymentIntentId,
	})
	return err
}
