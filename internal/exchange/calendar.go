package exchange

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// BuildCalendar renders the upcoming-birthdays listing as an iCalendar feed,
// one all-day VEVENT per projected occurrence. A non-empty reminderTrigger
// (ISO8601 duration, e.g. "-P1D") attaches a DISPLAY alarm to each event.
func BuildCalendar(now time.Time, upcoming []book.Upcoming, reminderTrigger string) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint for subscribing clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, u := range upcoming {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(u))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, u.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(u.Occurrence)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, fmt.Sprintf(config.FormatSummary, u.Name))
		}

		cal.Children = append(cal.Children, event.Component)
	}

	// An empty window still yields a valid VCALENDAR so feed clients never
	// flag the body as broken.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyCount, len(upcoming))
	return buf.Bytes(), nil
}

// eventUID derives a deterministic UID so feed clients keep event identity
// stable across refreshes.
func eventUID(u book.Upcoming) string {
	input := fmt.Sprintf(config.FormatHashInput, u.Name, u.Birthday.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, u.Occurrence.Year(), config.ICalDomain)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
