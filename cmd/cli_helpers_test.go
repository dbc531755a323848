/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskqueue/taskqueue-go/models"
)

func TestParseStatusFlag(t *testing.T) {
	status, err := parseStatusFlag("")
	require.NoError(t, err)
	assert.Nil(t, status, "empty flag means no filter")

	status, err = parseStatusFlag("Running")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusRunning, *status)

	_, err = parseStatusFlag("bogus")
	assert.Error(t, err)
}

func TestParsePriorityFlag(t *testing.T) {
	priority, err := parsePriorityFlag("")
	require.NoError(t, err)
	assert.Nil(t, priority)

	priority, err = parsePriorityFlag("Critical")
	require.NoError(t, err)
	require.NotNil(t, priority)
	assert.Equal(t, models.PriorityCritical, *priority)

	_, err = parsePriorityFlag("ASAP")
	assert.Error(t, err)
}
