package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact: a name, an ordered list of phone numbers
// (duplicates permitted), and an optional birthday.
type Record struct {
	name     Name
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with the given name and an empty phone list.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's immutable key.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phone numbers in insertion order.
// The returned slice is a copy; mutating it does not affect the record.
func (r *Record) Phones() []PhoneNumber {
	out := make([]PhoneNumber, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the record's birthday, if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates the number and appends it to the phone list.
// Duplicates are not rejected.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhoneNumber(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone returns the stored entry equal to number, if present.
func (r *Record) FindPhone(number string) (PhoneNumber, bool) {
	for _, p := range r.phones {
		if p.String() == number {
			return p, true
		}
	}
	return "", false
}

// RemovePhone removes the first stored entry equal to number.
// Absence is not an error.
func (r *Record) RemovePhone(number string) {
	for i, p := range r.phones {
		if p.String() == number {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first entry equal to old with new, preserving its
// position. The old number's presence is checked before the new one is
// validated, so an absent old number reports not-found even when the
// replacement is also invalid. A failed edit leaves the record unchanged.
func (r *Record) EditPhone(old, new string) error {
	idx := -1
	for i, p := range r.phones {
		if p.String() == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%s: %w", config.ErrPhoneMissing, ErrNotFound)
	}
	phone, err := NewPhoneNumber(new)
	if err != nil {
		return err
	}
	r.phones[idx] = phone
	return nil
}

// SetBirthday parses text as DD.MM.YYYY and stores it,
// replacing any existing birthday.
func (r *Record) SetBirthday(text string) error {
	b, err := NewBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders the record for display: name, semicolon-joined phones, and
// the birthday in DD.MM.YYYY or the "not set" sentinel.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	bday := config.BirthdayNotSet
	if r.birthday != nil {
		bday = r.birthday.String()
	}
	return fmt.Sprintf("%s: phones: %s, birthday: %s", r.name, strings.Join(phones, "; "), bday)
}
