package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/exchange"
)

func (s *Shell) cmdHello(_ context.Context, _ []string) string {
	return s.msg(config.TKeyHowHelp)
}

// cmdAdd creates the contact on first sight and appends the phone number.
// A failed phone validation still leaves a freshly created contact in place,
// matching the historical behavior of the assistant.
func (s *Shell) cmdAdd(_ context.Context, args []string) string {
	if len(args) < 2 {
		return s.msg(config.TKeyErrArgs)
	}
	name, phone := args[0], args[1]

	record, ok := s.Book.Find(name)
	reply := config.TKeyContactUpdated
	if !ok {
		r, err := book.NewRecord(name)
		if err != nil {
			return s.errText(err)
		}
		s.Book.AddRecord(r)
		record = r
		reply = config.TKeyContactAdded
	}

	if err := record.AddPhone(phone); err != nil {
		return s.errText(err)
	}
	s.changed()
	return s.msg(reply)
}

func (s *Shell) cmdChange(_ context.Context, args []string) string {
	if len(args) < 3 {
		return s.msg(config.TKeyErrArgs)
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return s.errText(err)
	}
	s.changed()
	return s.msg(config.TKeyPhoneUpdated)
}

func (s *Shell) cmdPhone(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.msg(config.TKeyErrArgs)
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	phones := record.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return strings.Join(out, "; ")
}

func (s *Shell) cmdAll(_ context.Context, _ []string) string {
	if s.Book.Len() == 0 {
		return s.msg(config.TKeyBookEmpty)
	}
	records := s.Book.All()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func (s *Shell) cmdAddBirthday(_ context.Context, args []string) string {
	if len(args) < 2 {
		return s.msg(config.TKeyErrArgs)
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return s.errText(err)
	}
	s.changed()
	return s.msg(config.TKeyBirthdayAdded)
}

func (s *Shell) cmdShowBirthday(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.msg(config.TKeyErrArgs)
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	b, ok := record.Birthday()
	if !ok {
		return s.msg(config.TKeyNoBirthday)
	}
	return b.String()
}

func (s *Shell) cmdBirthdays(_ context.Context, args []string) string {
	window := config.DefaultWindowDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return s.msg(config.TKeyErrWindow)
		}
		window = n
	}

	upcoming := s.Book.UpcomingBirthdays(s.Clock.Now(), window)
	if len(upcoming) == 0 {
		return s.msgData(config.TKeyNoUpcoming, map[string]any{"Days": window})
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Name, u.Birthday)
	}
	return strings.Join(lines, "\n")
}

func (s *Shell) cmdDelete(_ context.Context, args []string) string {
	if len(args) < 1 {
		return s.msg(config.TKeyErrArgs)
	}
	if _, ok := s.Book.Find(args[0]); !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	s.Book.Delete(args[0])
	s.changed()
	return s.msg(config.TKeyContactDeleted)
}

func (s *Shell) cmdRemovePhone(_ context.Context, args []string) string {
	if len(args) < 2 {
		return s.msg(config.TKeyErrArgs)
	}
	record, ok := s.Book.Find(args[0])
	if !ok {
		return s.msg(config.TKeyErrNotFound)
	}
	record.RemovePhone(args[1])
	s.changed()
	return s.msg(config.TKeyPhoneRemoved)
}

func (s *Shell) cmdExport(_ context.Context, args []string) string {
	path := config.DefaultExportFile
	if len(args) > 0 {
		path = args[0]
	}
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return err.Error()
	}
	defer func() { _ = f.Close() }()

	records := s.Book.All()
	if err := exchange.ExportVCards(f, records); err != nil {
		return err.Error()
	}
	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyFile, path,
		config.LogKeyCount, len(records))
	return s.msgData(config.TKeyExported, map[string]any{"Count": len(records), "Path": path})
}

func (s *Shell) cmdImport(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return s.msg(config.TKeyErrArgs)
	}
	source := args[0]

	reader, err := s.openImportSource(ctx, source)
	if err != nil {
		return err.Error()
	}
	defer func() { _ = reader.Close() }()

	result, err := exchange.ImportVCards(reader)
	if err != nil {
		return err.Error()
	}
	for _, r := range result.Records {
		s.Book.AddRecord(r)
	}
	if len(result.Records) > 0 {
		s.changed()
	}
	return s.msgData(config.TKeyImported, map[string]any{"Count": len(result.Records)})
}

// openImportSource opens a URL via the injected fetcher, anything else as a
// local file.
func (s *Shell) openImportSource(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, config.SchemeHTTP+"://") || strings.HasPrefix(source, config.SchemeHTTPS+"://") {
		return s.Fetcher.Fetch(ctx, source)
	}
	return os.Open(source)
}

func (s *Shell) cmdCalendar(_ context.Context, args []string) string {
	path := config.DefaultCalendarFile
	if len(args) > 0 {
		path = args[0]
	}

	upcoming := s.Book.UpcomingBirthdays(s.Clock.Now(), config.DefaultWindowDays)
	data, err := exchange.BuildCalendar(s.Clock.Now(), upcoming, config.DefaultReminderTrigger)
	if err != nil {
		return err.Error()
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return err.Error()
	}
	return s.msgData(config.TKeyCalendarSaved, map[string]any{"Path": path})
}

func (s *Shell) cmdHelp(_ context.Context, _ []string) string {
	return s.msg(config.TKeyHelp)
}
