// Package shell holds the line handling for the shell front-end: whitespace
// normalization, tokenization into an argument vector and prompt resolution.
//
// Tokenization is deliberately simpler than the POSIX token recognition
// rules: there is no quoting, expansion or operator handling. A line is split
// on runs of delimiter characters and every remaining run becomes one
// argument.
package shell

import (
	"errors"
	"strings"
)

// Delimiters holds the characters that separate tokens on a command line.
const Delimiters = " \t\r\n\a"

const (
	// DefaultMaxArgs is the token ceiling used when a Tokenizer has none set.
	DefaultMaxArgs = 131072

	// chunkSize is both the initial capacity of a vector and the amount it
	// grows by.
	chunkSize = 64
)

// ErrTooManyArgs is returned when a line holds more tokens than allowed.
var ErrTooManyArgs = errors.New("too many arguments")

// Argv is one parsed command line. The first element is the command name.
type Argv []string

// Name returns the command name or the empty string for an empty vector.
func (a Argv) Name() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// Args returns the arguments after the command name.
func (a Argv) Args() []string {
	if len(a) < 2 {
		return nil
	}
	return a[1:]
}

// String joins the vector with single spaces.
func (a Argv) String() string {
	return strings.Join(a, " ")
}

// Tokenizer splits lines into argument vectors.
type Tokenizer struct {
	// MaxArgs is the largest number of tokens a line may hold. Values <= 0
	// use DefaultMaxArgs.
	MaxArgs int
}

// NewTokenizer creates a tokenizer with the given token ceiling.
func NewTokenizer(maxArgs int) *Tokenizer {
	return &Tokenizer{MaxArgs: maxArgs}
}

func (t *Tokenizer) maxArgs() int {
	if t == nil || t.MaxArgs <= 0 {
		return DefaultMaxArgs
	}
	return t.MaxArgs
}

// Parse splits line into tokens. An empty or all-delimiter line yields an
// empty, non-nil Argv. If the line holds more than MaxArgs tokens the whole
// parse fails and no vector is returned.
func (t *Tokenizer) Parse(line string) (Argv, error) {
	limit := t.maxArgs()
	tokens := make(Argv, 0, chunkSize)

	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && !isDelimiter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}

		if len(tokens) >= limit {
			return nil, ErrTooManyArgs
		}
		if len(tokens) == cap(tokens) {
			grown := make(Argv, len(tokens), cap(tokens)+chunkSize)
			copy(grown, tokens)
			tokens = grown
		}
		tokens = append(tokens, line[start:i])
		start = -1
	}

	return tokens, nil
}

// Parse splits line using the default token ceiling.
func Parse(line string) (Argv, error) {
	return (*Tokenizer)(nil).Parse(line)
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(Delimiters, b) >= 0
}
