// Package rlog is the thin stderr logger used by the ambient layer (CLI,
// task harness, corpus server). The core packages (components A-G) never
// log; per spec section 5 no core operation performs I/O. This keeps the
// teacher's direct fmt.Fprintf(os.Stderr, ...) style from cmd/tqi/main.go
// rather than adopting a logging framework, but centralizes the
// "tag: message" format and a quiet switch.
package rlog

import (
	"fmt"
	"os"
)

var quiet bool

// SetQuiet suppresses Info and Warn output; Error output is never
// suppressed.
func SetQuiet(q bool) {
	quiet = q
}

// Info writes an operator-facing informational line to stderr, tagged
// with tag, unless quiet mode is on.
func Info(tag, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]any{tag}, args...)...)
}

// Warn writes a warning line to stderr, tagged with tag, unless quiet
// mode is on.
func Warn(tag, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: WARNING: "+format+"\n", append([]any{tag}, args...)...)
}

// Error writes an error line to stderr, tagged with tag. Never
// suppressed by quiet mode.
func Error(tag, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: ERROR: "+format+"\n", append([]any{tag}, args...)...)
}
