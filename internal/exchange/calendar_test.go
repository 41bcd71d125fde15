package exchange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/exchange"
)

func upcomingFixture(t *testing.T) []book.Upcoming {
	t.Helper()
	b, err := book.NewBirthday("03.01.1985")
	require.NoError(t, err)
	return []book.Upcoming{
		{
			Name:       "January",
			Birthday:   b,
			Occurrence: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuildCalendar(t *testing.T) {
	now := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)

	data, err := exchange.BuildCalendar(now, upcomingFixture(t), "")
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:"+config.ICalProdid)
	assert.Contains(t, ics, "BEGIN:VEVENT")
	assert.Contains(t, ics, "SUMMARY:Birthday: January")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250103")
	assert.NotContains(t, ics, "BEGIN:VALARM", "No alarm without a trigger")
}

func TestBuildCalendar_WithReminder(t *testing.T) {
	now := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)

	data, err := exchange.BuildCalendar(now, upcomingFixture(t), "-P1D")
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VALARM")
	assert.Contains(t, ics, "TRIGGER:-P1D")
	assert.Contains(t, ics, "ACTION:DISPLAY")
}

func TestBuildCalendar_EmptyWindow(t *testing.T) {
	now := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)

	data, err := exchange.BuildCalendar(now, nil, "-P1D")
	require.NoError(t, err)

	// An empty window still yields a valid calendar body.
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestBuildCalendar_StableUIDs(t *testing.T) {
	now := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)

	first, err := exchange.BuildCalendar(now, upcomingFixture(t), "")
	require.NoError(t, err)
	second, err := exchange.BuildCalendar(now, upcomingFixture(t), "")
	require.NoError(t, err)

	// Feed clients rely on UID stability across refreshes.
	assert.Equal(t, string(first), string(second))
}
