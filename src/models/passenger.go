package models

// Passenger is the single main traveler carried in the draft. It is stored
// independently of leg bookings so re-booking a leg never discards it.
// Gender follows the travel API convention: 0 = male, 1 = female.
type Passenger struct {
	FirstName              string  `json:"firstName" validate:"required"`
	LastName               string  `json:"lastName" validate:"required"`
	DateOfBirth            string  `json:"dateOfBirth" validate:"required"`
	Email                  string  `json:"email" validate:"required,emailpattern"`
	Phone                  string  `json:"phone" validate:"required,phonedigits"`
	Passport               string  `json:"passport" validate:"required,passportnum"`
	PassportExpiry         string  `json:"passportExpiry" validate:"required"`
	PassportIssuingCountry string  `json:"passportIssuingCountry" validate:"required,notplaceholder"`
	Nationality            string  `json:"nationality" validate:"required,notplaceholder"`
	Gender                 uint8   `json:"gender"`
	PhotoURL               *string `json:"photoUrl,omitempty"`
}
