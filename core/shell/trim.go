package shell

import "strings"

// TrimWhite strips leading and trailing delimiters from line. The result
// shares memory with line.
func TrimWhite(line string) string {
	return strings.Trim(line, Delimiters)
}
