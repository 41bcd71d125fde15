package book

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// The record fields are small validated value types: construction either
// succeeds with an always-valid value or fails with ErrInvalidFormat.
// Nothing is ever stored unvalidated.

// Name is the case-sensitive record key. It is immutable after creation.
type Name string

// NewName validates and wraps a contact name.
func NewName(value string) (Name, error) {
	if value == "" {
		return "", fmt.Errorf("%s: %w", config.ErrNameEmpty, ErrInvalidFormat)
	}
	return Name(value), nil
}

// String returns the raw name.
func (n Name) String() string {
	return string(n)
}

// PhoneNumber is a string of exactly ten decimal digits.
type PhoneNumber string

// NewPhoneNumber validates and wraps a phone number.
// The input must round-trip unchanged through String().
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if !validPhone(value) {
		return "", fmt.Errorf("%s: %w", config.ErrPhoneFormat, ErrInvalidFormat)
	}
	return PhoneNumber(value), nil
}

// String returns the raw digit string.
func (p PhoneNumber) String() string {
	return string(p)
}

func validPhone(value string) bool {
	if len(value) != config.PhoneNumberLength {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date carried in the book's single external date
// representation, DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a DD.MM.YYYY string into a Birthday.
// Impossible calendar dates (day 31 in a 30-day month, Feb 29 outside leap
// years, malformed fields) fail with ErrInvalidFormat.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(config.DateFormatBirthday, value)
	// time.Parse tolerates missing zero padding; the format contract does
	// not, so the parsed date must format back to the exact input.
	if err != nil || date.Format(config.DateFormatBirthday) != value {
		return Birthday{}, fmt.Errorf("%s: %w", config.ErrBirthdayFormat, ErrInvalidFormat)
	}
	return Birthday{date: date}, nil
}

// Date returns the underlying calendar date (midnight UTC).
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday back to DD.MM.YYYY.
// Parsing then formatting yields the original string.
func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}
