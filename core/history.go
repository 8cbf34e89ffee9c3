package core

import (
	"fmt"
	"io"
)

// DefaultHistoryBase is the number given to the first history entry.
const DefaultHistoryBase = 1

// History is the in-memory list of lines the user entered.
type History struct {
	// Base is the number printed for the first entry. It rises as entries
	// beyond Limit are dropped so each line keeps its number.
	Base int
	// Limit caps the number of entries kept, oldest first out. Zero means no
	// limit.
	Limit int

	entries []string
}

// NewHistory creates an empty history.
func NewHistory(base, limit int) *History {
	return &History{Base: base, Limit: limit}
}

// Add appends a line to the history.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if h.Limit > 0 && len(h.entries) > h.Limit {
		dropped := len(h.entries) - h.Limit
		h.entries = append([]string(nil), h.entries[dropped:]...)
		h.Base += dropped
	}
}

// Entries returns the lines in the order they were added.
func (h *History) Entries() []string {
	return h.entries
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

// WriteTo writes one numbered entry per line.
func (h *History) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, line := range h.entries {
		n, err := fmt.Fprintf(w, "%d %s\n", i+h.Base, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
