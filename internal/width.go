package internal

import (
	"os"

	"github.com/strideworks/stridemap/internal/contract"
	"golang.org/x/term"
)

// distanceBarWidth computes how wide the trend bar column may be, based on
// terminal width and the fixed columns around it.
func distanceBarWidth(cfg *contract.Config) int {
	termWidth := cfg.Width // Absolute override from flag/env

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for Year + Month + Activities + Km with borders/padding
	const baseWidth = 45

	width := termWidth - baseWidth
	if width < 10 {
		width = 10
	}
	if width > 40 {
		width = 40
	}
	return width
}
