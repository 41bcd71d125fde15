package exchange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ExportVCards writes one vCard 4.0 per record: formatted name, one TEL per
// phone number, and BDAY when a birthday is set.
func ExportVCards(w io.Writer, records []*book.Record) error {
	enc := vcard.NewEncoder(w)
	for _, r := range records {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, r.Name().String())
		for _, p := range r.Phones() {
			card.AddValue(config.VCardTEL, p.String())
		}
		if b, ok := r.Birthday(); ok {
			card.SetValue(config.VCardBDAY, b.Date().Format(config.DateFormatFullBasic))
		}
		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

// ImportResult summarizes a vCard import pass.
type ImportResult struct {
	Records []*book.Record
	Skipped int // malformed or nameless cards dropped along the way
}

// ImportVCards decodes a vCard stream into records. Malformed cards, invalid
// phone values, and unparseable birthdays are skipped with a log entry
// rather than failing the whole import, to maximize data recovery.
func ImportVCards(r io.Reader) (ImportResult, error) {
	decoder := vcard.NewDecoder(r)
	var result ImportResult

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyError, err)
			result.Skipped++
			continue
		}

		// Name strategy: FN (formatted) > N (structured).
		name := card.Value(config.VCardFN)
		if name == "" {
			name = card.Value(config.VCardN)
		}
		record, err := book.NewRecord(name)
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyError, err)
			result.Skipped++
			continue
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := record.AddPhone(tel); err != nil {
				slog.Debug(config.MsgSkippedPhone,
					config.LogKeyComponent, config.CompExchange,
					config.LogKeyName, name,
					config.LogKeyValue, tel)
			}
		}

		if bday := card.Value(config.VCardBDAY); bday != "" {
			if date, err := parseBirthday(bday); err != nil {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompExchange,
					config.LogKeyName, name,
					config.LogKeyValue, bday)
			} else if err := record.SetBirthday(date.Format(config.DateFormatBirthday)); err != nil {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompExchange,
					config.LogKeyName, name,
					config.LogKeyValue, bday)
			}
		}

		result.Records = append(result.Records, record)
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyImported, len(result.Records),
		config.LogKeySkipped, result.Skipped)
	return result, nil
}

// parseBirthday handles the date layouts encountered in vCard BDAY fields.
// Truncated --MM-DD values get the leap-safe placeholder year.
func parseBirthday(value string) (time.Time, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
