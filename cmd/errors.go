/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/taskqueue/taskqueue-go/internal/ui"
)

// errOut is where error and debug output goes, swappable in tests.
var errOut io.Writer = os.Stderr

// PrintError prints a user-friendly message by default. If the --verbose
// flag is set, it prints the full technical error in an error panel instead.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintln(errOut, ui.RenderErrorPanel("Error", technicalErr.Error()))
	} else {
		fmt.Fprintln(errOut, userMsg)
	}
}

// LogVerbose prints a debug line when verbose mode is on.
func LogVerbose(msg string) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(errOut, "[DEBUG] %s\n", msg)
	}
}
