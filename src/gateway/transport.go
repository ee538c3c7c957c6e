package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"tbs/src/models"
	"tbs/src/types"
)

type TransportBookingClient struct{}

func NewTransportBookingClient() TransportBookingClient {
	return TransportBookingClient{}
}

func (TransportBookingClient) BookInternationalTransport(ctx context.Context, token string, body types.BookTransportRequestBody) (*models.PendingTransportBooking, error) {
	payload, err := doJSON(ctx, http.MethodPost, "/InternationalTransportBooking/BookInternationalTransport", token, body)
	if err != nil {
		return nil, err
	}
	var record models.PendingTransportBooking
	if err := json.Unmarshal(dataSection(payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (TransportBookingClient) GetMyPendingTransportBookings(ctx context.Context, token string) ([]models.PendingTransportBooking, error) {
	payload, err := doJSON(ctx, http.MethodGet, "/InternationalTransportBooking/GetMyPendingTransportBookings", token, nil)
	if err != nil {
		return nil, err
	}
	var records []models.PendingTransportBooking
	if err := json.Unmarshal(dataSection(payload), &records); err != nil {
		return nil, err
	}
	return records, nil
}
