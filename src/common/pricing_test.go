package common

import (
	"math"
	"testing"

	"tbs/src/models"

	"github.com/stretchr/testify/assert"
)

func snapshotWithPrices(makkah, madinah, international, ground float64) models.BookingSnapshot {
	return models.BookingSnapshot{
		MakkahHotel:            &models.HotelLeg{TotalPrice: makkah},
		MadinahHotel:           &models.HotelLeg{TotalPrice: madinah},
		InternationalTransport: &models.TransportLeg{TotalPrice: international},
		GroundTransport:        &models.GroundLeg{TotalPrice: ground},
	}
}

func TestQuoteFullPackage(t *testing.T) {
	price := Quote(snapshotWithPrices(100, 150, 200, 50))
	assert.Equal(t, 500.0, price.Subtotal)
	assert.Equal(t, 25.0, price.Tax)
	assert.Equal(t, 25.0, price.ServiceFee)
	assert.Equal(t, 550.0, price.Total)
}

func TestQuoteRoundsTaxToCents(t *testing.T) {
	price := Quote(snapshotWithPrices(300, 300, 400, 60))
	assert.Equal(t, 1060.0, price.Subtotal)
	assert.Equal(t, 53.0, price.Tax)
	assert.Equal(t, 1138.0, price.Total)

	price = Quote(snapshotWithPrices(10.11, 0, 0, 0))
	assert.Equal(t, 0.51, price.Tax)
	assert.Equal(t, 35.62, price.Total)
}

func TestQuoteMissingLegsContributeZero(t *testing.T) {
	price := Quote(models.BookingSnapshot{MakkahHotel: &models.HotelLeg{TotalPrice: 100}})
	assert.Equal(t, 100.0, price.Subtotal)
	assert.Equal(t, 5.0, price.Tax)
	assert.Equal(t, 130.0, price.Total)

	price = Quote(models.BookingSnapshot{})
	assert.Equal(t, 0.0, price.Subtotal)
	assert.Equal(t, 25.0, price.Total)
}

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, 0.0, CoerceAmount(math.NaN()))
	assert.Equal(t, 0.0, CoerceAmount(math.Inf(1)))
	assert.Equal(t, 0.0, CoerceAmount(math.Inf(-1)))
	assert.Equal(t, 42.5, CoerceAmount(42.5))
}

func TestQuoteIgnoresNonFiniteLegPrices(t *testing.T) {
	price := Quote(snapshotWithPrices(100, math.NaN(), math.Inf(1), 50))
	assert.Equal(t, 150.0, price.Subtotal)
	assert.Equal(t, 7.5, price.Tax)
	assert.Equal(t, 182.5, price.Total)
}
