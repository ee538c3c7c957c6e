package common

import (
	"math"

	"tbs/src/config"
	"tbs/src/models"
)

type PriceBreakdown struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

// CoerceAmount guards pricing against partially populated legs: anything
// that is not a finite number counts as zero.
func CoerceAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

// Quote derives the package price from a snapshot: leg subtotal, 5% tax
// rounded to cents, flat service fee, total rounded to cents. Missing legs
// contribute zero.
func Quote(s models.BookingSnapshot) PriceBreakdown {
	var makkah, madinah, international, ground float64
	if s.MakkahHotel != nil {
		makkah = CoerceAmount(s.MakkahHotel.TotalPrice)
	}
	if s.MadinahHotel != nil {
		madinah = CoerceAmount(s.MadinahHotel.TotalPrice)
	}
	if s.InternationalTransport != nil {
		international = CoerceAmount(s.InternationalTransport.TotalPrice)
	}
	if s.GroundTransport != nil {
		ground = CoerceAmount(s.GroundTransport.TotalPrice)
	}
	subtotal := makkah + madinah + international + ground
	tax := roundCents(subtotal * config.TAX_RATE)
	return PriceBreakdown{
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: config.SERVICE_FEE,
		Total:      roundCents(subtotal + tax + config.SERVICE_FEE),
	}
}
