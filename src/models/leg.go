package models

// HotelLeg is one booked hotel stay (Makkah or Madinah). BookingHotelID and
// BookingID are assigned server-side once the leg is persisted as a pending
// booking and are never sent back on package creation.
type HotelLeg struct {
	HotelID        uint    `json:"hotelId"`
	RoomID         uint    `json:"roomId"`
	HotelName      string  `json:"hotelName,omitempty"`
	RoomType       string  `json:"roomType,omitempty"`
	City           string  `json:"city,omitempty"`
	CheckInDate    string  `json:"checkInDate,omitempty"`
	CheckOutDate   string  `json:"checkOutDate,omitempty"`
	NumberOfRooms  uint    `json:"numberOfRooms,omitempty"`
	TotalPrice     float64 `json:"totalPrice,omitempty"`
	BookingHotelID uint    `json:"bookingHotelId,omitempty"`
	BookingID      uint    `json:"bookingId,omitempty"`
}

// TransportLeg is the booked international transport (flight or sea).
type TransportLeg struct {
	TransportID                     uint    `json:"transportId"`
	CarrierName                     string  `json:"carrierName,omitempty"`
	TransportType                   string  `json:"transportType,omitempty"`
	NumberOfSeats                   uint    `json:"numberOfSeats,omitempty"`
	TotalPrice                      float64 `json:"totalPrice,omitempty"`
	BookingInternationalTransportID uint    `json:"bookingInternationalTransportId,omitempty"`
	BookingID                       uint    `json:"bookingId,omitempty"`
}

// GroundLeg is the booked ground transport between cities.
type GroundLeg struct {
	GroundTransportID        uint    `json:"groundTransportId"`
	ServiceName              string  `json:"serviceName,omitempty"`
	ServiceDate              string  `json:"serviceDate,omitempty"`
	PickupLocation           string  `json:"pickupLocation,omitempty"`
	DropoffLocation          string  `json:"dropoffLocation,omitempty"`
	NumberOfPassengers       uint    `json:"numberOfPassengers,omitempty"`
	TotalPrice               float64 `json:"totalPrice,omitempty"`
	BookingGroundTransportID uint    `json:"bookingGroundTransportId,omitempty"`
	BookingID                uint    `json:"bookingId,omitempty"`
}
