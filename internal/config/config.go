package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used by the vCard importer.
var UserAgent = "Go-AddressBook/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Address Book"
	AppID             = "com.github.tartampluch.go-addressbook"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and exported contact files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app cache directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagFeedPort     = "feed-port"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescLang     = "UI message language (ISO 639-1)"
	FlagDescFeedPort = "Serve the birthday calendar feed on this localhost port (disabled when empty)"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	// DefaultWindowDays is the window used by the `birthdays` command when no
	// explicit day count is given.
	DefaultWindowDays = 7

	DefaultLanguage = "en"

	// DefaultLeapYear is the placeholder year for vCard birthdays given as --MM-DD.
	DefaultLeapYear = 2000

	// DefaultReminderTrigger is the VALARM trigger attached to generated
	// birthday events (ISO8601 duration, one day before).
	DefaultReminderTrigger = "-P1D"

	DefaultExportFile   = "contacts.vcf"
	DefaultCalendarFile = "birthdays.ics"

	// PhoneNumberLength is the exact digit count a phone number must have.
	PhoneNumberLength = 10
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only external date representation the book
	// defines: two-digit day, two-digit month, four-digit year.
	DateFormatBirthday = "02.01.2006"

	// BirthdayNotSet is the rendering sentinel for records without a birthday.
	BirthdayNotSet = "N/A"

	// Date layouts accepted when parsing vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Address Book//Feed//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	DefaultICalRefresh = 1 * time.Hour

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	UIDSalt         = "go-addressbook-v1-"

	// Event Summaries
	FormatSummary = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// are found, so feed clients never see an invalid body.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteFeed           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderRetryAfter   = "Retry-After"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderUserAgent    = "User-Agent"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	// Sentinel error kinds surfaced by the book package.
	ErrInvalidFormat = "invalid format"
	ErrNotFound      = "not found"

	// Validation details wrapped around the sentinels.
	ErrPhoneFormat    = "phone number must contain exactly 10 digits"
	ErrBirthdayFormat = "invalid date format, use DD.MM.YYYY"
	ErrNameEmpty      = "contact name must not be empty"
	ErrPhoneMissing   = "phone number is not on the record"

	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrFetchStatus    = "server returned unexpected status"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrServerStartup  = "feed server startup failed"
	ErrServerShutdown = "feed server shutdown failed"
	ErrPortRequired   = "feed server port is required"
	ErrPortRange      = "feed server port must be between 1 and 65535"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrReadInput      = "failed to read command input"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Birthday feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down shell"
	MsgServerListen  = "Feed server listening"
	MsgServerStop    = "Shutting down feed server..."
	MsgFeedUpdated   = "Birthday feed snapshot updated"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid birthday value"
	MsgSkippedPhone  = "Skipping invalid phone value"
	MsgImportDone    = "vCard import finished"
	MsgExportDone    = "vCard export finished"
	MsgCalendarDone  = "Calendar generation successful"
	MsgShellStarted  = "Command shell started"
	MsgShellStopped  = "Command shell stopped"
	MsgCommandFailed = "Command returned an error"
	MsgUnknownCmd    = "Unknown command received"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgFetchStart    = "Initiating vCard download"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyPrompt         = "prompt"
	TKeyWelcome        = "msg_welcome"
	TKeyGoodbye        = "msg_goodbye"
	TKeyHowHelp        = "msg_how_help"
	TKeyContactAdded   = "msg_contact_added"
	TKeyContactUpdated = "msg_contact_updated"
	TKeyContactDeleted = "msg_contact_deleted"
	TKeyPhoneUpdated   = "msg_phone_updated"
	TKeyPhoneRemoved   = "msg_phone_removed"
	TKeyBirthdayAdded  = "msg_birthday_added"
	TKeyBookEmpty      = "msg_book_empty"
	TKeyNoBirthday     = "msg_no_birthday"
	TKeyNoUpcoming     = "msg_no_upcoming"
	TKeyExported       = "msg_exported"
	TKeyImported       = "msg_imported"
	TKeyCalendarSaved  = "msg_calendar_saved"
	TKeyHelp           = "msg_help"
	TKeyErrNotFound    = "err_contact_not_found"
	TKeyErrArgs        = "err_not_enough_args"
	TKeyErrCommand     = "err_invalid_command"
	TKeyErrWindow      = "err_invalid_window"
)

// -----------------------------------------------------------------------------
// Shell Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdCalendar     = "calendar"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyValue     = "value"
	LogKeyETag      = "etag"
	LogKeySizeBytes = "size_bytes"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyImported  = "records_imported"
	LogKeySkipped   = "cards_skipped"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompShell    = "shell"
	CompExchange = "exchange"
	CompFetcher  = "fetcher"
	CompServer   = "server"
	CompI18n     = "i18n"
)
