package common

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/jonboulle/clockwork"
)

// ErrPendingBookingExists is reported when the travel API rejects creation
// because an unfinished booking already exists for the user. It is
// recoverable: the user completes payment from the dashboard instead.
var ErrPendingBookingExists = errors.New("Please complete payment for your pending booking in the dashboard")

type BookingCreator interface {
	CreateBooking(ctx context.Context, token string, body types.CreateBookingRequestBody) (uint, error)
}

// Finalizer drives a draft through validating and submitting. The draft is
// deliberately NOT cleared on success: it survives until payment succeeds
// so a failed payment can be retried without re-entering leg data.
type Finalizer struct {
	Store    draft.Store
	Bookings BookingCreator
	Clock    clockwork.Clock
}

type FinalizeResult struct {
	Phase     types.BookingPhase `json:"phase"`
	BookingID uint               `json:"bookingId,omitempty"`
	Price     PriceBreakdown     `json:"price"`
	Reason    string             `json:"reason,omitempty"`
}

// Validate runs every precondition for leaving the drafting phase. A nil
// error means the snapshot is submittable.
func (f Finalizer) Validate(d models.BookingDraft) error {
	snapshot := d.Snapshot()
	if err := ValidateSnapshot(snapshot); err != nil {
		return err
	}
	if d.PassengerData == nil {
		return ErrPassengerRequired
	}
	if err := ValidatePassenger(*d.PassengerData); err != nil {
		return err
	}
	checkIn := ""
	if snapshot.MakkahHotel != nil {
		checkIn = snapshot.MakkahHotel.CheckInDate
	}
	if err := ValidatePassportExpiry(*d.PassengerData, checkIn, f.Clock); err != nil {
		return err
	}
	if Quote(snapshot).Total <= 0 {
		return ErrInvalidTotal
	}
	return nil
}

// Finalize validates the draft and submits it as a canonical booking. On
// a validation failure the phase stays at drafting with the blocking
// reason; on success the phase depends on the payment method (cash skips
// the payment step entirely).
func (f Finalizer) Finalize(ctx context.Context, userId, token string, body types.FinalizeRequestBody) (*FinalizeResult, error) {
	d, err := f.Store.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	snapshot := d.Snapshot()
	price := Quote(snapshot)

	if err := f.Validate(d); err != nil {
		return &FinalizeResult{Phase: types.BOOKING_DRAFTING, Price: price, Reason: err.Error()}, err
	}

	payload := BuildCreatePayload(snapshot, *d.PassengerData, body.TripType, price.Total, f.Clock)
	bookingId, err := f.Bookings.CreateBooking(ctx, token, payload)
	if err != nil {
		log.Printf("[finalize] booking creation failed for user %s: %s\n", userId, err.Error())
		if IsPendingConflict(err) {
			err = ErrPendingBookingExists
		}
		return &FinalizeResult{Phase: types.BOOKING_DRAFTING, Price: price, Reason: err.Error()}, err
	}

	if err := f.Store.Save(ctx, userId, models.BookingDraft{BookingID: bookingId}); err != nil {
		log.Printf("[finalize] could not persist booking id %d: %s\n", bookingId, err.Error())
	}

	phase := types.BOOKING_AWAITING_PAYMENT
	if body.PaymentMethod == types.PAYMENT_METHOD_CASH {
		phase = types.BOOKING_CONFIRMED
	}
	return &FinalizeResult{Phase: phase, BookingID: bookingId, Price: price}, nil
}

// IsPendingConflict matches the travel API's duplicate-pending-booking
// rejection, which is the one creation failure with a dedicated recovery
// path.
func IsPendingConflict(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already") || strings.Contains(msg, "pending")
}

// BuildCreatePayload assembles the clean creation payload: catalog ids and
// computed totals only. Server-side linking ids never travel back on
// create.
func BuildCreatePayload(s models.BookingSnapshot, passenger models.Passenger, trip types.TripType, total float64, clock clockwork.Clock) types.CreateBookingRequestBody {
	if trip != types.TRIP_HAJJ {
		trip = types.TRIP_UMRAH
	}
	now := clock.Now().Format(time.RFC3339)
	travelStart := s.MakkahHotel.CheckInDate
	if travelStart == "" {
		travelStart = now
	}
	travelEnd := s.MadinahHotel.CheckOutDate
	if travelEnd == "" {
		travelEnd = now
	}
	serviceDate := s.GroundTransport.ServiceDate
	if serviceDate == "" {
		serviceDate = now
	}

	return types.CreateBookingRequestBody{
		Type:              trip,
		Status:            "Pending",
		TravelStartDate:   travelStart,
		TravelEndDate:     travelEnd,
		NumberOfTravelers: 1,
		MakkahHotel: types.HotelBookingDto{
			HotelID:       s.MakkahHotel.HotelID,
			RoomID:        s.MakkahHotel.RoomID,
			City:          "Makkah",
			CheckInDate:   s.MakkahHotel.CheckInDate,
			CheckOutDate:  s.MakkahHotel.CheckOutDate,
			NumberOfRooms: defaultCount(s.MakkahHotel.NumberOfRooms),
			TotalPrice:    s.MakkahHotel.TotalPrice,
			Status:        "Pending",
		},
		MadinahHotel: types.HotelBookingDto{
			HotelID:       s.MadinahHotel.HotelID,
			RoomID:        s.MadinahHotel.RoomID,
			City:          "Madinah",
			CheckInDate:   s.MadinahHotel.CheckInDate,
			CheckOutDate:  s.MadinahHotel.CheckOutDate,
			NumberOfRooms: defaultCount(s.MadinahHotel.NumberOfRooms),
			TotalPrice:    s.MadinahHotel.TotalPrice,
			Status:        "Pending",
		},
		InternationalTransport: types.TransportBookingDto{
			TransportID:   s.InternationalTransport.TransportID,
			NumberOfSeats: s.InternationalTransport.NumberOfSeats,
			TotalPrice:    s.InternationalTransport.TotalPrice,
			Status:        "Pending",
		},
		GroundTransport: types.GroundBookingDto{
			GroundTransportID:  s.GroundTransport.GroundTransportID,
			ServiceDate:        serviceDate,
			PickupLocation:     s.GroundTransport.PickupLocation,
			DropoffLocation:    s.GroundTransport.DropoffLocation,
			NumberOfPassengers: defaultCount(s.GroundTransport.NumberOfPassengers),
			TotalPrice:         s.GroundTransport.TotalPrice,
			Status:             "Pending",
		},
		Travelers: []types.TravelerDto{
			{
				FirstName:              passenger.FirstName,
				LastName:               passenger.LastName,
				DateOfBirth:            passenger.DateOfBirth,
				PassportNumber:         passenger.Passport,
				PassportExpiryDate:     passenger.PassportExpiry,
				PassportIssuingCountry: passenger.PassportIssuingCountry,
				Nationality:            passenger.Nationality,
				Gender:                 passenger.Gender,
				PhoneNumber:            passenger.Phone,
				Email:                  passenger.Email,
				IsMainTraveler:         true,
				PhotoURL:               passenger.PhotoURL,
			},
		},
		TotalPrice: total,
	}
}

func defaultCount(n uint) uint {
	if n == 0 {
		return 1
	}
	return n
}
