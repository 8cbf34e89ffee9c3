// Package terminal owns the shell's relationship with its controlling
// terminal: foreground process group, job-control signal disposition and the
// terminal mode restored on the way out.
package terminal

import (
	"errors"
	"io/ioutil"
	"log"
	"os"

	"github.com/josephlewis42/labshell/core/shell"
	"golang.org/x/sys/unix"
)

// ErrAlreadyInitialized is returned by Init on a session that was already
// initialized.
var ErrAlreadyInitialized = errors.New("terminal session already initialized")

type state int

const (
	stateUninitialized state = iota
	stateActive
	stateTornDown
)

// Options configure a Session.
type Options struct {
	// Terminal is the descriptor of the controlling terminal, 0 (standard
	// input) by default.
	Terminal int

	// PromptEnv names the variable the prompt is read from, defaults to
	// shell.EnvPrompt.
	PromptEnv string
	// DefaultPrompt is used when PromptEnv is unset, defaults to
	// shell.DefaultPrompt.
	DefaultPrompt string

	// TTY and Signals default to the host implementations.
	TTY     TTY
	Signals Signals

	Logger *log.Logger
}

// Session is the live terminal state of the shell.
type Session struct {
	// Terminal is the controlling terminal descriptor.
	Terminal int
	// Pgid is the process group that owns the terminal while the shell runs.
	Pgid int
	// Interactive is true if Terminal refers to a terminal device.
	Interactive bool
	// Prompt is the interactive prompt.
	Prompt string

	mode    Mode
	state   state
	opts    Options
	tty     TTY
	signals Signals
	logger  *log.Logger
}

// NewSession creates an uninitialized session.
func NewSession(opts Options) *Session {
	if opts.PromptEnv == "" {
		opts.PromptEnv = shell.EnvPrompt
	}
	if opts.DefaultPrompt == "" {
		opts.DefaultPrompt = shell.DefaultPrompt
	}
	if opts.TTY == nil {
		opts.TTY = HostTTY()
	}
	if opts.Signals == nil {
		opts.Signals = HostSignals()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(ioutil.Discard, "", 0)
	}

	return &Session{
		opts:    opts,
		tty:     opts.TTY,
		signals: opts.Signals,
		logger:  opts.Logger,
	}
}

// Init takes ownership of the terminal. It must be called exactly once.
func (s *Session) Init() error {
	if s.state != stateUninitialized {
		return ErrAlreadyInitialized
	}

	s.Terminal = s.opts.Terminal
	s.Pgid = s.tty.ProcessGroup()
	s.Interactive = s.tty.IsTerminal(s.Terminal)

	mode, err := s.tty.GetMode(s.Terminal)
	switch {
	case err == nil:
		s.mode = mode
	case s.Interactive:
		s.logger.Printf("couldn't save terminal mode: %v", err)
	}

	if s.Interactive {
		if err := s.tty.SetForeground(s.Terminal, s.Pgid); err != nil {
			s.logger.Printf("couldn't take terminal foreground: %v", err)
		}
		s.signals.Reset(os.Interrupt)
	}

	s.Prompt = shell.ResolvePrompt(s.opts.PromptEnv, s.opts.DefaultPrompt)

	// Children started later must reset these for themselves.
	s.signals.Ignore(unix.SIGQUIT, unix.SIGTSTP, unix.SIGTTIN, unix.SIGTTOU)

	s.state = stateActive
	return nil
}

// Teardown releases the prompt and puts the terminal back in the mode saved
// by Init. It is a no-op unless the session is active, so it can be deferred
// on every exit path.
func (s *Session) Teardown() error {
	if s.state != stateActive {
		return nil
	}
	s.state = stateTornDown
	s.Prompt = ""

	if s.mode == nil {
		return nil
	}
	return s.tty.SetMode(s.Terminal, s.mode)
}

// SavedMode returns the terminal mode captured by Init, nil if none was.
func (s *Session) SavedMode() Mode {
	return s.mode
}

// Active reports whether Init ran and Teardown hasn't yet.
func (s *Session) Active() bool {
	return s.state == stateActive
}
