package core

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/josephlewis42/labshell/core/shell"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// Executor runs commands that aren't builtins.
type Executor interface {
	// Exec runs argv to completion and returns its exit status.
	Exec(argv shell.Argv) (int, error)
}

// ProcessExecutor runs commands as child processes.
//
// Children inherit the signals the terminal session ignores. Restoring
// job-control signals in the child is left to a fuller executor.
type ProcessExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Executor = (*ProcessExecutor)(nil)

// Exec implements Executor.
func (p *ProcessExecutor) Exec(argv shell.Argv) (int, error) {
	if len(argv) == 0 {
		return 0, nil
	}

	execPath, err := exec.LookPath(argv[0])
	if err != nil {
		return 127, fmt.Errorf("%s: %w", argv[0], err)
	}

	cmd := &exec.Cmd{
		Path:   execPath,
		Args:   argv,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
		Stderr: p.Stderr,
	}

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case err != nil:
		return 126, fmt.Errorf("%s: %w", argv[0], err)
	}
	return 0, nil
}
