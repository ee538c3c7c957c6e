package types

type TripType string

const (
	TRIP_UMRAH TripType = "umrah"
	TRIP_HAJJ  TripType = "hajj"
)

type PaymentMethod string

const (
	PAYMENT_METHOD_STRIPE PaymentMethod = "stripe"
	PAYMENT_METHOD_CASH   PaymentMethod = "cash"
)

// BookingPhase is the client-visible lifecycle of a package while it is
// being finalized. The cash path jumps from submitting straight to
// confirmed; validation failures fall back to drafting.
type BookingPhase string

const (
	BOOKING_DRAFTING         BookingPhase = "drafting"
	BOOKING_VALIDATING       BookingPhase = "validating"
	BOOKING_SUBMITTING       BookingPhase = "submitting"
	BOOKING_AWAITING_PAYMENT BookingPhase = "awaiting_payment"
	BOOKING_PAID             BookingPhase = "paid"
	BOOKING_CONFIRMED        BookingPhase = "confirmed"
)

type PaymentPhase string

const (
	PAYMENT_IDLE                PaymentPhase = "idle"
	PAYMENT_INITIALIZING        PaymentPhase = "initializing"
	PAYMENT_AWAITING_USER_INPUT PaymentPhase = "awaiting_user_input"
	PAYMENT_CONFIRMING          PaymentPhase = "confirming"
	PAYMENT_SUCCEEDED           PaymentPhase = "succeeded"
	PAYMENT_FAILED              PaymentPhase = "failed"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type BookHotelRequestBody struct {
	HotelID       uint    `json:"hotelId" binding:"required"`
	RoomID        uint    `json:"roomId" binding:"required"`
	HotelName     string  `json:"hotelName,omitempty"`
	RoomType      string  `json:"roomType,omitempty"`
	City          string  `json:"city" binding:"required"`
	CheckInDate   string  `json:"checkInDate" binding:"required"`
	CheckOutDate  string  `json:"checkOutDate" binding:"required"`
	NumberOfRooms uint    `json:"numberOfRooms,omitempty"`
	TotalPrice    float64 `json:"totalPrice" binding:"required"`
}

type BookTransportRequestBody struct {
	TransportID   uint    `json:"transportId" binding:"required"`
	CarrierName   string  `json:"carrierName,omitempty"`
	TransportType string  `json:"transportType,omitempty"`
	NumberOfSeats uint    `json:"numberOfSeats" binding:"required"`
	TotalPrice    float64 `json:"totalPrice" binding:"required"`
}

type BookGroundRequestBody struct {
	GroundTransportID  uint    `json:"groundTransportId" binding:"required"`
	ServiceName        string  `json:"serviceName,omitempty"`
	ServiceDate        string  `json:"serviceDate" binding:"required"`
	PickupLocation     string  `json:"pickupLocation" binding:"required"`
	DropoffLocation    string  `json:"dropoffLocation" binding:"required"`
	NumberOfPassengers uint    `json:"numberOfPassengers,omitempty"`
	TotalPrice         float64 `json:"totalPrice" binding:"required"`
}

type FinalizeRequestBody struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"required,oneof=stripe cash"`
	TripType      TripType      `json:"tripType,omitempty" binding:"omitempty,oneof=umrah hajj"`
}

type ConfirmPaymentRequestBody struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// HotelBookingDto is the clean hotel section of the package-creation
// payload: catalog ids and totals only, never the server-side linking ids.
// The capitalized Status key is what the travel API expects.
type HotelBookingDto struct {
	HotelID       uint    `json:"hotelId"`
	RoomID        uint    `json:"roomId"`
	City          string  `json:"city"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	NumberOfRooms uint    `json:"numberOfRooms"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"Status"`
}

type TransportBookingDto struct {
	TransportID   uint    `json:"transportId"`
	NumberOfSeats uint    `json:"numberOfSeats"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"Status"`
}

type GroundBookingDto struct {
	GroundTransportID  uint    `json:"groundTransportId"`
	ServiceDate        string  `json:"serviceDate"`
	PickupLocation     string  `json:"pickupLocation"`
	DropoffLocation    string  `json:"dropoffLocation"`
	NumberOfPassengers uint    `json:"numberOfPassengers"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"Status"`
}

type TravelerDto struct {
	FirstName              string  `json:"firstName"`
	LastName               string  `json:"lastName"`
	DateOfBirth            string  `json:"dateOfBirth"`
	PassportNumber         string  `json:"passportNumber"`
	PassportExpiryDate     string  `json:"passportExpiryDate"`
	PassportIssuingCountry string  `json:"passportIssuingCountry"`
	Nationality            string  `json:"nationality"`
	Gender                 uint8   `json:"gender"`
	PhoneNumber            string  `json:"phoneNumber"`
	Email                  string  `json:"email"`
	IsMainTraveler         bool    `json:"isMainTraveler"`
	PhotoURL               *string `json:"photoUrl"`
}

// CreateBookingRequestBody is the package-creation payload sent to the
// travel API once all four legs are present.
type CreateBookingRequestBody struct {
	Type                   TripType            `json:"type"`
	Status                 string              `json:"status"`
	TravelStartDate        string              `json:"travelStartDate"`
	TravelEndDate          string              `json:"travelEndDate"`
	NumberOfTravelers      uint                `json:"numberOfTravelers"`
	MakkahHotel            HotelBookingDto     `json:"makkahHotel"`
	MadinahHotel           HotelBookingDto     `json:"madinahHotel"`
	InternationalTransport TransportBookingDto `json:"internationalTransport"`
	GroundTransport        GroundBookingDto    `json:"groundTransport"`
	Travelers              []TravelerDto       `json:"travelers"`
	TotalPrice             float64             `json:"totalPrice"`
}

// CreatePaymentRequestBody asks the travel API for a payment intent. The
// idempotency key shields the processor from retry-click storms.
type CreatePaymentRequestBody struct {
	BookingID      uint    `json:"bookingId"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	IdempotencyKey string  `json:"idempotencyKey"`
}
