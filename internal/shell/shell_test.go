package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/shell"
)

// -----------------------------------------------------------------------------
// Mocks & Helpers
// -----------------------------------------------------------------------------

// fixedClock controls "today" for deterministic window tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// MockFetcher simulates the network layer for the import command.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	args := m.Called(ctx, url)
	if r := args.Get(0); r != nil {
		return r.(io.ReadCloser), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestShell(now time.Time) *shell.Shell {
	return &shell.Shell{
		Book:      book.NewAddressBook(),
		Clock:     fixedClock{now: now},
		Localizer: shell.SetupI18n("en"),
	}
}

// runScript feeds a command script to the shell and returns everything it
// printed. The script ends via EOF, which quits the loop like an explicit exit.
func runScript(t *testing.T, sh *shell.Shell, lines ...string) string {
	t.Helper()
	sh.In = strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	sh.Out = &out
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

var june1 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestShell_AddAndPhone(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"hello",
		"add John 1234567890",
		"add John 5555555555",
		"phone John",
		"exit",
	)

	assert.Contains(t, out, "Welcome to the assistant bot!")
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Contact updated.")
	assert.Contains(t, out, "1234567890; 5555555555")
	assert.Contains(t, out, "Good bye!")
}

func TestShell_AddInvalidPhone(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh, "add John 123", "exit")
	assert.Contains(t, out, "phone number must contain exactly 10 digits")
}

func TestShell_ChangePhone(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"add John 1234567890",
		"change John 1234567890 0000000000",
		"phone John",
		"change Nobody 1234567890 0000000000",
		"change John 9999999999 0000000000",
		"exit",
	)

	assert.Contains(t, out, "Phone number updated.")
	assert.Contains(t, out, "0000000000")
	assert.Contains(t, out, "Contact not found.")
	assert.Contains(t, out, "phone number is not on the record")
}

func TestShell_All(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh, "all", "exit")
	assert.Contains(t, out, "Address book is empty.")

	sh = newTestShell(june1)
	out = runScript(t, sh,
		"add John 1234567890",
		"add-birthday John 05.03.1990",
		"all",
		"exit",
	)
	assert.Contains(t, out, "John: phones: 1234567890, birthday: 05.03.1990")
}

func TestShell_Birthdays(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"add John 1234567890",
		"add-birthday John 05.06.1990",
		"add Jane 5555555555",
		"add-birthday Jane 20.06.1985",
		"add Ghost 9999999999",
		"show-birthday John",
		"show-birthday Ghost",
		"birthdays",
		"birthdays 30",
		"birthdays abc",
		"exit",
	)

	assert.Contains(t, out, "Birthday added.")
	assert.Contains(t, out, "05.06.1990")
	assert.Contains(t, out, "No birthday set.")
	assert.Contains(t, out, "John: 05.06.1990", "Default window covers June 5")
	assert.Contains(t, out, "Jane: 20.06.1985", "A 30-day window covers June 20")
	assert.Contains(t, out, "Window must be a positive number of days.")

	// The default 7-day listing must not include Jane (June 20).
	defaultSection := strings.Split(out, "John: 05.06.1990")[0]
	assert.NotContains(t, defaultSection, "Jane: 20.06.1985")
}

func TestShell_Birthdays_NewYearWraparound(t *testing.T) {
	dec29 := time.Date(2024, 12, 29, 8, 0, 0, 0, time.UTC)
	sh := newTestShell(dec29)

	out := runScript(t, sh,
		"add January 1234567890",
		"add-birthday January 03.01.1985",
		"birthdays",
		"exit",
	)

	assert.Contains(t, out, "January: 03.01.1985", "A January birthday is upcoming in late December")
}

func TestShell_Birthdays_Empty(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh, "birthdays", "exit")
	assert.Contains(t, out, "No birthdays in the next 7 days.")
}

func TestShell_InvalidInput(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"frobnicate",
		"add John",
		"",
		"add John 1234567890",
		"add-birthday John 1990-03-05",
		"exit",
	)

	assert.Contains(t, out, "Invalid command.")
	assert.Contains(t, out, "Not enough arguments.")
	assert.Contains(t, out, "invalid date format, use DD.MM.YYYY")
}

func TestShell_DeleteAndRemovePhone(t *testing.T) {
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"add John 1234567890",
		"add John 5555555555",
		"remove-phone John 1234567890",
		"phone John",
		"delete John",
		"delete John",
		"all",
		"exit",
	)

	assert.Contains(t, out, "Phone number removed.")
	assert.Contains(t, out, "Contact deleted.")
	assert.Contains(t, out, "Contact not found.", "Deleting an absent name must be reported, not confirmed")
	assert.Contains(t, out, "Address book is empty.")
	assert.NotContains(t, strings.Split(out, "Phone number removed.")[1], "1234567890")
}

func TestShell_DeleteAbsent_NoFeedRefresh(t *testing.T) {
	sh := newTestShell(june1)

	var calls int
	sh.OnChange = func(b *book.AddressBook) { calls++ }

	out := runScript(t, sh, "delete Nobody", "exit")
	assert.Contains(t, out, "Contact not found.")
	assert.Equal(t, 0, calls, "No mutation happened, so the feed must not refresh")
}

func TestShell_ImportFromURL(t *testing.T) {
	content := "BEGIN:VCARD\nVERSION:4.0\nFN:Remote\nTEL:1234567890\nBDAY:19900305\nEND:VCARD"

	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything, "http://example.com/contacts.vcf").
		Return(io.NopCloser(strings.NewReader(content)), nil)

	sh := newTestShell(june1)
	sh.Fetcher = fetcher

	out := runScript(t, sh,
		"import http://example.com/contacts.vcf",
		"show-birthday Remote",
		"exit",
	)

	assert.Contains(t, out, "Imported 1 contacts.")
	assert.Contains(t, out, "05.03.1990")
	fetcher.AssertExpectations(t)
}

func TestShell_ExportImport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.vcf")

	sh := newTestShell(june1)
	out := runScript(t, sh,
		"add John 1234567890",
		"add-birthday John 05.03.1990",
		"export "+path,
		"exit",
	)
	assert.Contains(t, out, "Exported 1 contacts to "+path)

	// A fresh shell rebuilds the book from the exported file.
	sh = newTestShell(june1)
	out = runScript(t, sh,
		"import "+path,
		"all",
		"exit",
	)
	assert.Contains(t, out, "Imported 1 contacts.")
	assert.Contains(t, out, "John: phones: 1234567890, birthday: 05.03.1990")
}

func TestShell_Calendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.ics")
	sh := newTestShell(june1)

	out := runScript(t, sh,
		"add John 1234567890",
		"add-birthday John 05.06.1990",
		"calendar "+path,
		"exit",
	)
	assert.Contains(t, out, "Birthday calendar saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Birthday: John")
}

func TestShell_OnChangeHook(t *testing.T) {
	sh := newTestShell(june1)

	var calls int
	sh.OnChange = func(b *book.AddressBook) { calls++ }

	runScript(t, sh,
		"add John 1234567890", // mutation
		"phone John",          // query
		"add-birthday John 05.03.1990", // mutation
		"birthdays", // query
		"exit",
	)

	assert.Equal(t, 2, calls, "Only mutations refresh the feed")
}

func TestShell_FrenchLocale(t *testing.T) {
	sh := newTestShell(june1)
	sh.Localizer = shell.SetupI18n("fr")

	out := runScript(t, sh, "bonjour", "exit")
	assert.Contains(t, out, "Bienvenue dans l'assistant !")
	assert.Contains(t, out, "Commande invalide.")
	assert.Contains(t, out, "Au revoir !")
}
