package models

// BookingDraft is the client-held assembly of independently booked legs plus
// the main traveler, scoped per authenticated user. Absence of a slot means
// that leg has not been booked yet. The server's pending records are the
// source of truth for BookingID.
type BookingDraft struct {
	MakkahHotelData  *HotelLeg     `json:"makkahHotelData,omitempty"`
	MadinahHotelData *HotelLeg     `json:"madinahHotelData,omitempty"`
	TransportData    *TransportLeg `json:"transportData,omitempty"`
	GroundData       *GroundLeg    `json:"groundData,omitempty"`
	PassengerData    *Passenger    `json:"passengerData,omitempty"`
	BookingID        uint          `json:"bookingId,omitempty"`
}

// Merge shallow-merges partial into d slot by slot. A populated slot in
// partial supersedes the existing one; untouched slots are kept.
func (d BookingDraft) Merge(partial BookingDraft) BookingDraft {
	if partial.MakkahHotelData != nil {
		d.MakkahHotelData = partial.MakkahHotelData
	}
	if partial.MadinahHotelData != nil {
		d.MadinahHotelData = partial.MadinahHotelData
	}
	if partial.TransportData != nil {
		d.TransportData = partial.TransportData
	}
	if partial.GroundData != nil {
		d.GroundData = partial.GroundData
	}
	if partial.PassengerData != nil {
		d.PassengerData = partial.PassengerData
	}
	if partial.BookingID != 0 {
		d.BookingID = partial.BookingID
	}
	return d
}

func (d BookingDraft) IsEmpty() bool {
	return d.MakkahHotelData == nil &&
		d.MadinahHotelData == nil &&
		d.TransportData == nil &&
		d.GroundData == nil &&
		d.PassengerData == nil &&
		d.BookingID == 0
}

// Snapshot projects the draft into the four leg slots used for completeness
// checks and pricing. Derived, never stored.
func (d BookingDraft) Snapshot() BookingSnapshot {
	return BookingSnapshot{
		MakkahHotel:            d.MakkahHotelData,
		MadinahHotel:           d.MadinahHotelData,
		InternationalTransport: d.TransportData,
		GroundTransport:        d.GroundData,
		BookingID:              d.BookingID,
	}
}

// BookingSnapshot is the read-only four-slot projection of a draft.
type BookingSnapshot struct {
	MakkahHotel            *HotelLeg     `json:"makkahHotel"`
	MadinahHotel           *HotelLeg     `json:"madinahHotel"`
	InternationalTransport *TransportLeg `json:"internationalTransport"`
	GroundTransport        *GroundLeg    `json:"groundTransport"`
	BookingID              uint          `json:"bookingId,omitempty"`
}

func (s BookingSnapshot) HotelsComplete() bool {
	return s.MakkahHotel != nil && s.MadinahHotel != nil
}

func (s BookingSnapshot) TransportComplete() bool {
	return s.InternationalTransport != nil && s.GroundTransport != nil
}

// Complete reports whether the package can be finalized: both hotel stays,
// the international leg and the ground leg are present.
func (s BookingSnapshot) Complete() bool {
	return s.HotelsComplete() && s.TransportComplete()
}
