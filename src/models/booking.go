package models

// Booking is the travel API's canonical record of a finalized package, as
// returned by the booking read endpoints. Used for the dashboard list and
// the confirmation screen; creation goes through types.CreateBookingRequestBody.
type Booking struct {
	ID                uint    `json:"id"`
	Type              string  `json:"type,omitempty"`
	Status            string  `json:"status,omitempty"`
	TravelStartDate   string  `json:"travelStartDate,omitempty"`
	TravelEndDate     string  `json:"travelEndDate,omitempty"`
	NumberOfTravelers uint    `json:"numberOfTravelers,omitempty"`
	TotalPrice        float64 `json:"totalPrice,omitempty"`
	PaymentIntentID   *string `json:"paymentIntentId,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}
