package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/exchange"
)

// Shell is the line-oriented command loop around the address book. It reads
// one command per line, dispatches into the book, and translates the book's
// error kinds into localized user-facing text. It owns no domain logic.
type Shell struct {
	Book    *book.AddressBook
	Clock   book.Clock
	Fetcher exchange.Fetcher

	In  io.Reader
	Out io.Writer

	Localizer *i18n.Localizer

	// OnChange, when set, is invoked after every successful mutation so the
	// feed server can re-render its snapshot. It receives the book whose
	// state just changed; the shell never calls it concurrently.
	OnChange func(*book.AddressBook)
}

// handler processes one parsed command and returns the line(s) to display.
type handler func(ctx context.Context, args []string) string

// Run executes the read-dispatch-print loop until the user quits, input is
// exhausted, or the context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	slog.Info(config.MsgShellStarted, config.LogKeyComponent, config.CompShell)

	dispatch := map[string]handler{
		config.CmdHello:        s.cmdHello,
		config.CmdAdd:          s.cmdAdd,
		config.CmdChange:       s.cmdChange,
		config.CmdPhone:        s.cmdPhone,
		config.CmdAll:          s.cmdAll,
		config.CmdAddBirthday:  s.cmdAddBirthday,
		config.CmdShowBirthday: s.cmdShowBirthday,
		config.CmdBirthdays:    s.cmdBirthdays,
		config.CmdDelete:       s.cmdDelete,
		config.CmdRemovePhone:  s.cmdRemovePhone,
		config.CmdExport:       s.cmdExport,
		config.CmdImport:       s.cmdImport,
		config.CmdCalendar:     s.cmdCalendar,
		config.CmdHelp:         s.cmdHelp,
	}

	s.println(s.msg(config.TKeyWelcome))

	scanner := bufio.NewScanner(s.In)
	for {
		if ctx.Err() != nil {
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompShell)
			return ctx.Err()
		}

		fmt.Fprint(s.Out, s.msg(config.TKeyPrompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			// EOF ends the session like an explicit quit.
			s.println(s.msg(config.TKeyGoodbye))
			slog.Info(config.MsgShellStopped, config.LogKeyComponent, config.CompShell)
			return nil
		}

		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}

		if command == config.CmdClose || command == config.CmdExit {
			s.println(s.msg(config.TKeyGoodbye))
			slog.Info(config.MsgShellStopped, config.LogKeyComponent, config.CompShell)
			return nil
		}

		h, ok := dispatch[command]
		if !ok {
			slog.Debug(config.MsgUnknownCmd,
				config.LogKeyComponent, config.CompShell,
				config.LogKeyCommand, command)
			s.println(s.msg(config.TKeyErrCommand))
			continue
		}
		s.println(h(ctx, args))
	}
}

// parseInput splits a raw line into a lowercase command verb and its
// arguments. Blank lines yield an empty verb.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.Out, text)
}

// msg translates a key safely, falling back to the key itself.
func (s *Shell) msg(key string) string {
	return s.msgData(key, nil)
}

// msgData translates a key with template data, falling back to the key itself.
func (s *Shell) msgData(key string, data map[string]any) string {
	if s.Localizer == nil {
		return key
	}
	m, err := s.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompShell,
			config.LogKeyKey, key,
			config.LogKeyError, err)
		return key
	}
	return m
}

// errText maps a book error to display text. Missing contacts are detected
// at the Find call sites and get the localized message there; record-level
// failures carry their own detail line.
func (s *Shell) errText(err error) string {
	slog.Debug(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyError, err)
	return err.Error()
}

// changed notifies the feed hook after a successful mutation.
func (s *Shell) changed() {
	if s.OnChange != nil {
		s.OnChange(s.Book)
	}
}
