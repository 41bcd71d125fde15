package book

import (
	"sort"
	"time"
)

// AddressBook is a collection of records keyed by name. It exclusively owns
// the records it holds; callers mutate them only through lookups on the book.
// The book is not internally synchronized (single-caller contract).
type AddressBook struct {
	records map[string]*Record

	// order tracks insertion order of names. The "all" listing makes no
	// ordering promise, but the upcoming-birthdays listing needs a stable
	// tie-break, so the index is maintained for both.
	order []string
}

// Upcoming is one match of the birthday window query.
type Upcoming struct {
	// Name of the matched record.
	Name Name

	// Birthday as stored on the record (original year).
	Birthday Birthday

	// Occurrence is the birthday projected into the queried window.
	// This is the listing's sort key.
	Occurrence time.Time
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts or overwrites the entry for the record's name.
// Overwriting discards the previous record entirely (last-write-wins by
// name, a documented policy). A re-added name keeps its original position
// in insertion order.
func (ab *AddressBook) AddRecord(r *Record) {
	name := r.Name().String()
	if _, exists := ab.records[name]; !exists {
		ab.order = append(ab.order, name)
	}
	ab.records[name] = r
}

// Find returns the record for an exact, case-sensitive name match.
func (ab *AddressBook) Find(name string) (*Record, bool) {
	r, ok := ab.records[name]
	return r, ok
}

// Delete removes the entry if present. Absence is not an error.
func (ab *AddressBook) Delete(name string) {
	if _, ok := ab.records[name]; !ok {
		return
	}
	delete(ab.records, name)
	for i, n := range ab.order {
		if n == name {
			ab.order = append(ab.order[:i], ab.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of records in the book.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}

// All returns the records in insertion order.
func (ab *AddressBook) All() []*Record {
	out := make([]*Record, 0, len(ab.order))
	for _, name := range ab.order {
		out = append(out, ab.records[name])
	}
	return out
}

// UpcomingBirthdays returns every record whose birthday falls within
// [today, today+windowDays] inclusive, ordered ascending by the projected
// occurrence with ties kept in insertion order.
//
// A birthday is projected by replacing its year with today's year; if that
// projection has already passed and the window crosses into the next year,
// the projection moves to the window's end year instead, so a January 3rd
// birthday is still found when today is December 29th. Comparisons are
// date-granular (midnight-truncated).
//
// February 29th birthdays in a year without a Feb 29 are projected onto
// March 1st, following time.Date normalization.
func (ab *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []Upcoming {
	start := truncateToDate(today)
	end := start.AddDate(0, 0, windowDays)

	var matches []Upcoming
	for _, name := range ab.order {
		r := ab.records[name]
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		occurrence, ok := projectIntoWindow(b.Date(), start, end)
		if !ok {
			continue
		}
		matches = append(matches, Upcoming{
			Name:       r.Name(),
			Birthday:   b,
			Occurrence: occurrence,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Occurrence.Before(matches[j].Occurrence)
	})
	return matches
}

// projectIntoWindow reinterprets a birthday inside the [start, end] window.
// It reports the projected occurrence and whether it lands in the window.
func projectIntoWindow(birthday, start, end time.Time) (time.Time, bool) {
	loc := start.Location()
	adjusted := time.Date(start.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)

	// Already passed this year and the window spans New Year: the relevant
	// occurrence is the one in the window's end year.
	if adjusted.Before(start) && adjusted.Year() != end.Year() {
		adjusted = time.Date(end.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	}

	inWindow := !adjusted.Before(start) && !adjusted.After(end)
	return adjusted, inWindow
}

// truncateToDate strips the time-of-day component.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
