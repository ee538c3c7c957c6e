package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"tbs/src/models"
	"tbs/src/types"
)

type GroundBookingClient struct{}

func NewGroundBookingClient() GroundBookingClient {
	return GroundBookingClient{}
}

func (GroundBookingClient) BookGroundTransport(ctx context.Context, token string, body types.BookGroundRequestBody) (*models.PendingGroundBooking, error) {
	payload, err := doJSON(ctx, http.MethodPost, "/GroundTransportBooking/BookGroundTransport", token, body)
	if err != nil {
		return nil, err
	}
	var record models.PendingGroundBooking
	if err := json.Unmarshal(dataSection(payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (GroundBookingClient) GetMyPendingGroundBookings(ctx context.Context, token string) ([]models.PendingGroundBooking, error) {
	payload, err := doJSON(ctx, http.MethodGet, "/GroundTransportBooking/GetMyPendingGroundBookings", token, nil)
	if err != nil {
		return nil, err
	}
	var records []models.PendingGroundBooking
	if err := json.Unmarshal(dataSection(payload), &records); err != nil {
		return nil, err
	}
	return records, nil
}
