package models

// Pending leg bookings are legs persisted server-side but not yet attached
// to a paid parent Booking. They are fetched, never owned: the server's
// shapes are mirrored here and converted into draft legs during
// reconciliation.

type PendingHotelBooking struct {
	HotelID        uint    `json:"hotelId"`
	RoomID         uint    `json:"roomId"`
	HotelName      string  `json:"hotelName"`
	RoomType       string  `json:"roomType"`
	City           string  `json:"city"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	NumberOfRooms  uint    `json:"numberOfRooms"`
	TotalPrice     float64 `json:"totalPrice"`
	BookingHotelID uint    `json:"bookingHotelId"`
	BookingID      uint    `json:"bookingId"`
}

func (p PendingHotelBooking) ToLeg() *HotelLeg {
	return &HotelLeg{
		HotelID:        p.HotelID,
		RoomID:         p.RoomID,
		HotelName:      p.HotelName,
		RoomType:       p.RoomType,
		City:           p.City,
		CheckInDate:    p.CheckInDate,
		CheckOutDate:   p.CheckOutDate,
		NumberOfRooms:  p.NumberOfRooms,
		TotalPrice:     p.TotalPrice,
		BookingHotelID: p.BookingHotelID,
		BookingID:      p.BookingID,
	}
}

// PendingTransportBooking carries both id spellings the travel API has used
// for the international leg; TransportID wins only when the canonical field
// is absent.
type PendingTransportBooking struct {
	InternationalTransportID        uint    `json:"internationalTransportId"`
	TransportID                     uint    `json:"transportId"`
	CarrierName                     string  `json:"carrierName"`
	TransportType                   string  `json:"transportType"`
	NumberOfSeats                   uint    `json:"numberOfSeats"`
	TotalPrice                      float64 `json:"totalPrice"`
	BookingInternationalTransportID uint    `json:"bookingInternationalTransportId"`
	BookingID                       uint    `json:"bookingId"`
}

func (p PendingTransportBooking) ToLeg() *TransportLeg {
	transportId := p.InternationalTransportID
	if transportId == 0 {
		transportId = p.TransportID
	}
	return &TransportLeg{
		TransportID:                     transportId,
		CarrierName:                     p.CarrierName,
		TransportType:                   p.TransportType,
		NumberOfSeats:                   p.NumberOfSeats,
		TotalPrice:                      p.TotalPrice,
		BookingInternationalTransportID: p.BookingInternationalTransportID,
		BookingID:                       p.BookingID,
	}
}

type PendingGroundBooking struct {
	GroundTransportID        uint    `json:"groundTransportId"`
	ServiceName              string  `json:"serviceName"`
	ServiceDate              string  `json:"serviceDate"`
	PickupLocation           string  `json:"pickupLocation"`
	DropoffLocation          string  `json:"dropoffLocation"`
	NumberOfPassengers       uint    `json:"numberOfPassengers"`
	TotalPrice               float64 `json:"totalPrice"`
	BookingGroundTransportID uint    `json:"bookingGroundTransportId"`
	BookingID                uint    `json:"bookingId"`
}

func (p PendingGroundBooking) ToLeg() *GroundLeg {
	return &GroundLeg{
		GroundTransportID:        p.GroundTransportID,
		ServiceName:              p.ServiceName,
		ServiceDate:              p.ServiceDate,
		PickupLocation:           p.PickupLocation,
		DropoffLocation:          p.DropoffLocation,
		NumberOfPassengers:       p.NumberOfPassengers,
		TotalPrice:               p.TotalPrice,
		BookingGroundTransportID: p.BookingGroundTransportID,
		BookingID:                p.BookingID,
	}
}
