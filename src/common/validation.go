package common

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"tbs/src/config"
	"tbs/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

var (
	ErrHotelsRequired    = errors.New("hotels required: book both the Makkah and Madinah hotels before continuing")
	ErrTransportRequired = errors.New("transport required: complete the international and ground transport bookings")
	ErrPassengerRequired = errors.New("traveler details are required before finalizing")
	ErrInvalidTotal      = errors.New("cannot continue without a valid total cost")
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{7,15}$`)
	passportRegex = regexp.MustCompile(`^[A-Za-z0-9]{6,9}$`)
)

var validate = newPassengerValidator()

func newPassengerValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("emailpattern", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		phone := strings.ReplaceAll(fl.Field().String(), " ", "")
		return phoneRegex.MatchString(phone)
	})
	v.RegisterValidation("passportnum", func(fl validator.FieldLevel) bool {
		return passportRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("notplaceholder", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value != "" && value != "None"
	})
	return v
}

// ValidateSnapshot reports which booking category is still missing.
func ValidateSnapshot(s models.BookingSnapshot) error {
	if !s.HotelsComplete() {
		return ErrHotelsRequired
	}
	if !s.TransportComplete() {
		return ErrTransportRequired
	}
	return nil
}

// ValidatePassenger runs field-level validation on the main traveler and
// translates the first violation into the message shown to the user.
func ValidatePassenger(p models.Passenger) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(passengerMessage(verrs[0]))
	}
	return err
}

func passengerMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FirstName":
		return "Please enter your first name"
	case "LastName":
		return "Please enter your last name"
	case "DateOfBirth":
		return "Please enter your date of birth"
	case "Email":
		if fe.Tag() == "required" {
			return "Please enter your email address"
		}
		return "Please enter a valid email address"
	case "Phone":
		if fe.Tag() == "required" {
			return "Please enter your phone number"
		}
		return "Please enter a valid phone number (7-15 digits)"
	case "Passport":
		if fe.Tag() == "required" {
			return "Please enter your passport number"
		}
		return "Passport number must be 6-9 alphanumeric characters"
	case "PassportExpiry":
		return "Please enter passport expiry date"
	case "PassportIssuingCountry":
		return "Please select passport issuing country"
	case "Nationality":
		return "Please select your nationality"
	}
	return fe.Error()
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(config.DATE_PARSE_FORMAT, value)
}

// ValidatePassportExpiry enforces the six-months-after-travel-start rule.
// The travel start reference is the Makkah check-in date; when it is absent
// the current time is used instead, which knowingly lets soon-expiring
// passports through on incomplete drafts.
func ValidatePassportExpiry(p models.Passenger, makkahCheckIn string, clock clockwork.Clock) error {
	expiry, err := parseDate(p.PassportExpiry)
	if err != nil {
		return errors.New("Passport expiry date is invalid")
	}
	travelStart := clock.Now()
	if makkahCheckIn != "" {
		if t, perr := parseDate(makkahCheckIn); perr == nil {
			travelStart = t
		}
	}
	if expiry.Before(travelStart.AddDate(0, 6, 0)) {
		return errors.New("Passport expiry date must be more than 6 months from the travel date")
	}
	return nil
}
