// Package cliutil holds the output helpers shared by the specparity commands
// and report writers.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted report output to w. A failed write is noted on
// stderr and otherwise ignored; report writers have no way to recover.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "specparity: write error: %v\n", err)
	}
}

// Writeln writes each line followed by a newline.
func Writeln(w io.Writer, lines ...string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}
