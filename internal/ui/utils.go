package ui

import "os"

// IsInteractive checks if stdout is a terminal. This avoids spinners and
// styling when output is piped or running non-interactively.
func IsInteractive() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
