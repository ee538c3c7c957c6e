package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"tbs/src/models"
	"tbs/src/types"
)

type HotelBookingClient struct{}

func NewHotelBookingClient() HotelBookingClient {
	return HotelBookingClient{}
}

// BookHotel creates a pending hotel leg server-side and returns the stored
// record including its linking ids.
func (HotelBookingClient) BookHotel(ctx context.Context, token string, body types.BookHotelRequestBody) (*models.PendingHotelBooking, error) {
	payload, err := doJSON(ctx, http.MethodPost, "/HotelBooking/BookHotel", token, body)
	if err != nil {
		return nil, err
	}
	var record models.PendingHotelBooking
	if err := json.Unmarshal(dataSection(payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (HotelBookingClient) GetMyPendingHotelBookings(ctx context.Context, token string) ([]models.PendingHotelBooking, error) {
	payload, err := doJSON(ctx, http.MethodGet, "/HotelBooking/GetMyPendingHotelBookings", token, nil)
	if err != nil {
		return nil, err
	}
	var records []models.PendingHotelBooking
	if err := json.Unmarshal(dataSection(payload), &records); err != nil {
		return nil, err
	}
	return records, nil
}
