/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func captureErrOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	errOut = &buf
	t.Cleanup(func() { errOut = os.Stderr })
	return &buf
}

func TestPrintError(t *testing.T) {
	t.Run("default shows the user message only", func(t *testing.T) {
		buf := captureErrOut(t)
		viper.Set("verbose", false)

		PrintError("Failed to create task.", errors.New("dial tcp: connection refused"))
		assert.Contains(t, buf.String(), "Failed to create task.")
		assert.NotContains(t, buf.String(), "connection refused")
	})

	t.Run("verbose shows the technical error in a panel", func(t *testing.T) {
		buf := captureErrOut(t)
		viper.Set("verbose", true)
		t.Cleanup(func() { viper.Set("verbose", false) })

		PrintError("Failed to create task.", errors.New("dial tcp: connection refused"))
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("verbose without a technical error falls back to the user message", func(t *testing.T) {
		buf := captureErrOut(t)
		viper.Set("verbose", true)
		t.Cleanup(func() { viper.Set("verbose", false) })

		PrintError("Cancelled.", nil)
		assert.Contains(t, buf.String(), "Cancelled.")
	})
}

func TestLogVerbose(t *testing.T) {
	buf := captureErrOut(t)

	viper.Set("verbose", false)
	LogVerbose("loading config")
	assert.Empty(t, buf.String())

	viper.Set("verbose", true)
	t.Cleanup(func() { viper.Set("verbose", false) })
	LogVerbose("loading config")
	assert.Contains(t, buf.String(), "[DEBUG] loading config")
}
