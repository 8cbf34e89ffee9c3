package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Mode is an opaque snapshot of a terminal's attributes.
type Mode interface{}

// TTY holds the terminal primitives a Session needs.
type TTY interface {
	// IsTerminal reports whether fd refers to a terminal.
	IsTerminal(fd int) bool
	// GetMode captures the current attributes of fd.
	GetMode(fd int) (Mode, error)
	// SetMode applies previously captured attributes to fd immediately.
	SetMode(fd int, mode Mode) error
	// SetForeground makes pgid the foreground process group of fd.
	SetForeground(fd, pgid int) error
	// ProcessGroup returns the process group of the calling process.
	ProcessGroup() int
}

// Signals changes process-wide signal disposition.
type Signals interface {
	// Reset restores the default behavior of sig.
	Reset(sig ...os.Signal)
	// Ignore stops delivery of sig to the process.
	Ignore(sig ...os.Signal)
}

type hostTTY struct{}

// HostTTY returns the TTY backed by the operating system.
func HostTTY() TTY {
	return hostTTY{}
}

func (hostTTY) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (hostTTY) GetMode(fd int) (Mode, error) {
	return unix.IoctlGetTermios(fd, ioctlGetTermios)
}

func (hostTTY) SetMode(fd int, mode Mode) error {
	termios, ok := mode.(*unix.Termios)
	if !ok {
		return unix.EINVAL
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}

func (hostTTY) SetForeground(fd, pgid int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid)
}

func (hostTTY) ProcessGroup() int {
	return unix.Getpgrp()
}

type hostSignals struct{}

// HostSignals returns the Signals backed by os/signal.
func HostSignals() Signals {
	return hostSignals{}
}

func (hostSignals) Reset(sig ...os.Signal) {
	signal.Reset(sig...)
}

func (hostSignals) Ignore(sig ...os.Signal) {
	signal.Ignore(sig...)
}
