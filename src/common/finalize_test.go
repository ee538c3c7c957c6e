package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

type fakeBookingCreator struct {
	id       uint
	err      error
	received *types.CreateBookingRequestBody
}

func (f *fakeBookingCreator) CreateBooking(ctx context.Context, token string, body types.CreateBookingRequestBody) (uint, error) {
	f.received = &body
	return f.id, f.err
}

func completeDraft() models.BookingDraft {
	p := validPassenger()
	return models.BookingDraft{
		MakkahHotelData: &models.HotelLeg{
			HotelID: 1, RoomID: 2, City: "Makkah",
			CheckInDate: "2026-06-01", CheckOutDate: "2026-06-05",
			TotalPrice: 100, BookingHotelID: 71, BookingID: 7,
		},
		MadinahHotelData: &models.HotelLeg{
			HotelID: 3, RoomID: 4, City: "Madinah",
			CheckInDate: "2026-06-05", CheckOutDate: "2026-06-10",
			NumberOfRooms: 2, TotalPrice: 150, BookingHotelID: 72, BookingID: 7,
		},
		TransportData: &models.TransportLeg{
			TransportID: 5, NumberOfSeats: 1, TotalPrice: 200,
			BookingInternationalTransportID: 73, BookingID: 7,
		},
		GroundData: &models.GroundLeg{
			GroundTransportID: 6, ServiceDate: "2026-06-01",
			PickupLocation: "Jeddah Airport", DropoffLocation: "Makkah Hotel",
			TotalPrice: 50, BookingGroundTransportID: 74, BookingID: 7,
		},
		PassengerData: &p,
		BookingID:     7,
	}
}

func testClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestFinalizeValidationFailureStaysDrafting(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	d := completeDraft()
	d.MadinahHotelData = nil
	assert.NoError(t, store.Save(ctx, "u1", d))

	f := Finalizer{Store: store, Bookings: &fakeBookingCreator{}, Clock: testClock()}
	result, err := f.Finalize(ctx, "u1", "token", types.FinalizeRequestBody{PaymentMethod: types.PAYMENT_METHOD_STRIPE})
	assert.ErrorIs(t, err, ErrHotelsRequired)
	assert.Equal(t, types.BOOKING_DRAFTING, result.Phase)
	assert.Equal(t, ErrHotelsRequired.Error(), result.Reason)
	assert.Zero(t, result.BookingID)
}

func TestFinalizeMissingPassenger(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	d := completeDraft()
	d.PassengerData = nil
	assert.NoError(t, store.Save(ctx, "u1", d))

	f := Finalizer{Store: store, Bookings: &fakeBookingCreator{}, Clock: testClock()}
	_, err := f.Finalize(ctx, "u1", "token", types.FinalizeRequestBody{PaymentMethod: types.PAYMENT_METHOD_STRIPE})
	assert.ErrorIs(t, err, ErrPassengerRequired)
}

func TestFinalizeStripeAwaitsPayment(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, "u1", completeDraft()))

	creator := &fakeBookingCreator{id: 55}
	f := Finalizer{Store: store, Bookings: creator, Clock: testClock()}
	result, err := f.Finalize(ctx, "u1", "token", types.FinalizeRequestBody{PaymentMethod: types.PAYMENT_METHOD_STRIPE})
	assert.NoError(t, err)
	assert.Equal(t, types.BOOKING_AWAITING_PAYMENT, result.Phase)
	assert.Equal(t, uint(55), result.BookingID)
	assert.Equal(t, 550.0, result.Price.Total)

	// The canonical id sticks to the draft for the payment step.
	stored, _ := store.Get(ctx, "u1")
	assert.Equal(t, uint(55), stored.BookingID)
	assert.NotNil(t, stored.MakkahHotelData)
}

func TestFinalizeCashConfirmsImmediately(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, "u1", completeDraft()))

	f := Finalizer{Store: store, Bookings: &fakeBookingCreator{id: 56}, Clock: testClock()}
	result, err := f.Finalize(ctx, "u1", "token", types.FinalizeRequestBody{PaymentMethod: types.PAYMENT_METHOD_CASH})
	assert.NoError(t, err)
	assert.Equal(t, types.BOOKING_CONFIRMED, result.Phase)
}

func TestFinalizePendingConflict(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, "u1", completeDraft()))

	creator := &fakeBookingCreator{err: errors.New("You already have a pending booking")}
	f := Finalizer{Store: store, Bookings: creator, Clock: testClock()}
	result, err := f.Finalize(ctx, "u1", "token", types.FinalizeRequestBody{PaymentMethod: types.PAYMENT_METHOD_STRIPE})
	assert.ErrorIs(t, err, ErrPendingBookingExists)
	assert.Equal(t, types.BOOKING_DRAFTING, result.Phase)
}

func TestIsPendingConflict(t *testing.T) {
	assert.True(t, IsPendingConflict(errors.New("You already have a pending booking")))
	assert.True(t, IsPendingConflict(errors.New("a PENDING booking exists")))
	assert.False(t, IsPendingConflict(errors.New("internal server error")))
}

func TestBuildCreatePayloadIsClean(t *testing.T) {
	d := completeDraft()
	snapshot := d.Snapshot()
	payload := BuildCreatePayload(snapshot, *d.PassengerData, "", 550, testClock())

	assert.Equal(t, types.TRIP_UMRAH, payload.Type)
	assert.Equal(t, "Pending", payload.Status)
	assert.Equal(t, "2026-06-01", payload.TravelStartDate)
	assert.Equal(t, "2026-06-10", payload.TravelEndDate)
	assert.Equal(t, uint(1), payload.NumberOfTravelers)
	assert.Equal(t, 550.0, payload.TotalPrice)

	assert.Equal(t, "Makkah", payload.MakkahHotel.City)
	assert.Equal(t, uint(1), payload.MakkahHotel.NumberOfRooms, "zero room count defaults to 1")
	assert.Equal(t, uint(2), payload.MadinahHotel.NumberOfRooms)
	assert.Equal(t, "Pending", payload.MakkahHotel.Status)
	assert.Equal(t, uint(1), payload.GroundTransport.NumberOfPassengers)

	assert.Len(t, payload.Travelers, 1)
	traveler := payload.Travelers[0]
	assert.True(t, traveler.IsMainTraveler)
	assert.Equal(t, "Ahmed", traveler.FirstName)
	assert.Equal(t, "AB123456", traveler.PassportNumber)
}

func TestBuildCreatePayloadOmitsLinkingIds(t *testing.T) {
	d := completeDraft()
	payload := BuildCreatePayload(d.Snapshot(), *d.PassengerData, types.TRIP_HAJJ, 550, testClock())
	assert.Equal(t, types.TRIP_HAJJ, payload.Type)

	// The DTOs have no room for server-side linking ids, so marshaling the
	// payload must not leak any of them.
	raw := mustJSON(t, payload)
	assert.NotContains(t, raw, "bookingHotelId")
	assert.NotContains(t, raw, "bookingGroundTransportId")
	assert.NotContains(t, raw, "bookingInternationalTransportId")
	assert.Contains(t, raw, `"Status":"Pending"`)
}

func TestBuildCreatePayloadDateFallbacks(t *testing.T) {
	d := completeDraft()
	d.MakkahHotelData.CheckInDate = ""
	d.MadinahHotelData.CheckOutDate = ""
	d.GroundData.ServiceDate = ""
	payload := BuildCreatePayload(d.Snapshot(), *d.PassengerData, types.TRIP_UMRAH, 550, testClock())

	now := "2026-01-01T00:00:00Z"
	assert.Equal(t, now, payload.TravelStartDate)
	assert.Equal(t, now, payload.TravelEndDate)
	assert.Equal(t, now, payload.GroundTransport.ServiceDate)
}
