package config

import (
	"os"
	"strings"
)

// GetTravelAPIBaseURL returns the base URL of the remote travel REST API
// that owns hotels, transports, bookings and payment intents.
func GetTravelAPIBaseURL() string {
	base := os.Getenv("TRAVEL_API_URL")
	if base == "" {
		base = "http://localhost:5000/api"
	}
	return strings.TrimRight(base, "/")
}

// GetPaymentCurrency returns the ISO currency code used for payment intents.
func GetPaymentCurrency() string {
	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "usd"
	}
	return strings.ToLower(currency)
}

// GetAppHost returns the public origin of the web client. Confirmation and
// cancellation routes handed back to the frontend are built against it.
func GetAppHost() string {
	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "http://localhost:4200"
	}
	return strings.TrimRight(host, "/")
}

const DATE_PARSE_FORMAT = "2006-01-02"

// TAX_RATE is the flat 5% tax applied on the package subtotal.
const TAX_RATE = 0.05

// SERVICE_FEE is the flat per-package service fee in currency units.
const SERVICE_FEE = 25.0
