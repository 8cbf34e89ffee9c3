package core

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/labshell/core/config"
	"github.com/josephlewis42/labshell/core/shell"
	"github.com/josephlewis42/labshell/core/terminal"
)

// LineReader supplies raw input lines. *readline.Instance implements it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// historySaver is implemented by readers that keep their own history.
type historySaver interface {
	SaveHistory(content string) error
}

// historyResetter is implemented by readers whose history can be cleared.
type historyResetter interface {
	ResetHistory()
}

// Shell ties a terminal session to the line reader, builtins and executor.
type Shell struct {
	Session  *terminal.Session
	Reader   LineReader
	Executor Executor
	History  *History

	Stdout io.Writer
	Stderr io.Writer

	tokenizer *shell.Tokenizer
	colors    *ColorPrinter
	logger    *log.Logger

	lastRet int
}

// ShellOptions hold the optional parts of a Shell.
type ShellOptions struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewShell creates a shell over an initialized session.
func NewShell(session *terminal.Session, cfg *config.Configuration, reader LineReader, executor Executor, opts ShellOptions) *Shell {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = log.New(ioutil.Discard, "", 0)
	}

	history := NewHistory(cfg.HistoryBase, cfg.HistoryLimit)
	saved, err := cfg.ReadHistory()
	if err != nil {
		opts.Logger.Printf("couldn't read history: %v", err)
	}
	for _, line := range saved {
		history.Add(line)
	}

	return &Shell{
		Session:   session,
		Reader:    reader,
		Executor:  executor,
		History:   history,
		Stdout:    opts.Stdout,
		Stderr:    opts.Stderr,
		tokenizer: shell.NewTokenizer(cfg.MaxArgs),
		colors:    NewColorPrinter(cfg.Color, session),
		logger:    opts.Logger,
	}
}

// Run reads and runs lines until input ends or a builtin exits the shell.
func (s *Shell) Run() error {
	for {
		s.Reader.SetPrompt(s.Session.Prompt)
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			return fmt.Errorf("readline: %w", err)
		}

		if err := s.RunLine(line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

// RunLine runs a single line of input. It returns ErrExit if the line ended
// the shell.
func (s *Shell) RunLine(line string) error {
	line = shell.TrimWhite(line)
	if line == "" {
		return nil
	}

	s.History.Add(line)
	if saver, ok := s.Reader.(historySaver); ok {
		if err := saver.SaveHistory(line); err != nil {
			s.logger.Printf("couldn't save history: %v", err)
		}
	}

	argv, err := s.tokenizer.Parse(line)
	if err != nil {
		s.errorf("sh: %v\n", err)
		return nil
	}
	if len(argv) == 0 {
		return nil
	}

	if handled, err := s.DoBuiltin(argv); handled {
		return err
	}

	s.lastRet, err = s.Executor.Exec(argv)
	switch {
	case errors.Is(err, ErrNotFound):
		s.errorf("%s: command not found\n", argv[0])
	case err != nil:
		s.errorf("sh: %v\n", err)
	}
	return nil
}

// LastStatus returns the exit status of the last executed command.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

func (s *Shell) errorf(format string, a ...interface{}) {
	fmt.Fprint(s.Stderr, s.colors.Sprintf(ColorBoldRed, format, a...))
}
