package core

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"sort"
	"strconv"

	"github.com/josephlewis42/labshell/core/shell"
	"github.com/pborman/getopt/v2"
)

// Version numbers printed by the -v builtin.
const (
	VersionMajor = 1
	VersionMinor = 0
)

// ErrExit is returned by builtins that end the shell.
var ErrExit = errors.New("exit")

// ShellBuiltin is a command the shell runs itself.
type ShellBuiltin interface {
	Main(s *Shell, argv shell.Argv) error
}

type ShellBuiltinFunc func(s *Shell, argv shell.Argv) error

func (f ShellBuiltinFunc) Main(s *Shell, argv shell.Argv) error {
	return f(s, argv)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// allBuiltins is fixed at compile time.
var allBuiltins = map[string]ShellBuiltin{
	"-v":      ShellBuiltinFunc(Version),
	"exit":    ShellBuiltinFunc(Exit),
	"cd":      ShellBuiltinFunc(Cd),
	"history": ShellBuiltinFunc(ListHistory),
}

// LookupBuiltin returns the builtin with the given name.
func LookupBuiltin(name string) (ShellBuiltin, bool) {
	builtin, ok := allBuiltins[name]
	return builtin, ok
}

// BuiltinNames lists the builtins in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range allBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DoBuiltin runs argv if it names a builtin and reports whether it did. The
// only error returned is ErrExit; other failures are reported to the user
// and still count as handled.
func (s *Shell) DoBuiltin(argv shell.Argv) (bool, error) {
	builtin, ok := LookupBuiltin(argv.Name())
	if !ok {
		return false, nil
	}
	return true, builtin.Main(s, argv)
}

// Version prints the shell version and exits.
func Version(s *Shell, argv shell.Argv) error {
	fmt.Fprintf(s.Stdout, "Shell version %d.%d\n", VersionMajor, VersionMinor)
	return ErrExit
}

// Exit quits the shell.
func Exit(s *Shell, argv shell.Argv) error {
	return ErrExit
}

// Cd is the cd shell builtin. Arguments after the directory are ignored.
func Cd(s *Shell, argv shell.Argv) error {
	var dir string
	switch len(argv) {
	case 1:
		home, err := homeDir()
		if err != nil {
			s.errorf("%s: %v\n", argv[0], err)
			return nil
		}
		dir = home
	default:
		dir = argv[1]
	}

	if err := os.Chdir(dir); err != nil {
		s.errorf("%s: %v\n", argv[0], err)
	}
	return nil
}

// homeDir returns $HOME, falling back to the current user's entry in the
// user database.
func homeDir() (string, error) {
	if home, ok := os.LookupEnv("HOME"); ok {
		return home, nil
	}

	u, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// ListHistory lists or clears the command history.
func ListHistory(s *Shell, argv shell.Argv) error {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(argv, nil); err != nil || *helpOpt {
		w := s.Stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display the history list with line numbers.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return nil
	}

	if *clear {
		s.History.Clear()
		if resetter, ok := s.Reader.(historyResetter); ok {
			resetter.ResetHistory()
		}
		return nil
	}

	if _, err := s.History.WriteTo(s.Stdout); err != nil {
		s.logger.Printf("history: %v", err)
	}
	return nil
}
