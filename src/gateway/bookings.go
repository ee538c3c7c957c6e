package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tbs/src/models"
	"tbs/src/types"

	"github.com/tidwall/gjson"
)

type BookingsClient struct{}

func NewBookingsClient() BookingsClient {
	return BookingsClient{}
}

// CreateBooking submits the assembled package and returns the canonical
// booking id. The API has answered with data.id, data.bookingId or a bare
// id depending on version, so all three spellings are accepted.
func (BookingsClient) CreateBooking(ctx context.Context, token string, body types.CreateBookingRequestBody) (uint, error) {
	payload, err := doJSON(ctx, http.MethodPost, "/Booking", token, body)
	if err != nil {
		return 0, err
	}
	id := gjson.GetBytes(payload, "data.id")
	if !id.Exists() {
		id = gjson.GetBytes(payload, "data.bookingId")
	}
	if !id.Exists() {
		id = gjson.GetBytes(payload, "id")
	}
	if !id.Exists() || id.Uint() == 0 {
		return 0, errors.New("booking id not found in response")
	}
	return uint(id.Uint()), nil
}

func (BookingsClient) GetBooking(ctx context.Context, token string, id uint) (*models.Booking, error) {
	payload, err := doJSON(ctx, http.MethodGet, fmt.Sprintf("/Booking/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := json.Unmarshal(dataSection(payload), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (BookingsClient) GetMyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	payload, err := doJSON(ctx, http.MethodGet, "/Booking/MyBookings", token, nil)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := json.Unmarshal(dataSection(payload), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
