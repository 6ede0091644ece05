// main is the entry point for the stridemap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/strideworks/stridemap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
