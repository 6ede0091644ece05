// Package contract has configuration contracts and validation shared by all
// stridemap commands.
package contract

import (
	"fmt"
	"os"
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
