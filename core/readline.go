package core

import (
	"math"
	"os"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/labshell/core/config"
	"github.com/josephlewis42/labshell/core/terminal"
)

// LineEditor is a readline instance usable as the shell's LineReader.
type LineEditor struct {
	*readline.Instance
}

var _ LineReader = (*LineEditor)(nil)

// NewLineEditor creates a line editor on the process's standard streams.
func NewLineEditor(session *terminal.Session, cfg *config.Configuration) (*LineEditor, error) {
	if err := cfg.PrepareHistoryFile(); err != nil {
		return nil, err
	}

	// readline treats 0 as its own default, the config means unlimited.
	historyLimit := cfg.HistoryLimit
	if historyLimit == 0 {
		historyLimit = math.MaxInt32
	}

	rlConfig := &readline.Config{
		Prompt:                 session.Prompt,
		HistoryFile:            cfg.HistoryPath(),
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		Stdin:                  readline.NewCancelableStdin(os.Stdin),
		Stdout:                 os.Stdout,
		Stderr:                 os.Stderr,
		FuncIsTerminal: func() bool {
			return session.Interactive
		},
	}

	if err := rlConfig.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	return &LineEditor{Instance: instance}, nil
}

// ResetHistory drops the editor's history.
func (l *LineEditor) ResetHistory() {
	l.Operation.ResetHistory()
}
