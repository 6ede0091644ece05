// Package internal has output helpers that are only useful within the
// stridemap runtime.
package internal

import (
	"fmt"
	"os"
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
