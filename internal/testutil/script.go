// Package testutil provides testing utilities.
package testutil

import (
	"io"
	"strings"
)

// Script returns console input that answers prompts with lines, in order.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
