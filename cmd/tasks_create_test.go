/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaskFile_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
- name: Build
  command: make build
  project_id: a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c
  priority: High
- name: Test
  command: make test
  project_id: a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c
`
	require.NoError(t, afero.WriteFile(fs, "tasks.yaml", []byte(content), 0o644))

	reqs, err := loadTaskFile(fs, "tasks.yaml")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "Build", reqs[0].Name)
	assert.Equal(t, "make build", reqs[0].Command)
	assert.Equal(t, "a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c", reqs[0].ProjectID)
	assert.Equal(t, "High", string(reqs[0].Priority))
	assert.Equal(t, "Test", reqs[1].Name)
}

func TestLoadTaskFile_JSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `[{"name": "Build", "command": "make", "project_id": "a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c"}]`
	require.NoError(t, afero.WriteFile(fs, "tasks.json", []byte(content), 0o644))

	reqs, err := loadTaskFile(fs, "tasks.json")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Build", reqs[0].Name)
}

func TestLoadTaskFile_UnknownEnumRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `[{"name": "Build", "command": "make", "project_id": "a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c", "priority": "Urgent"}]`
	require.NoError(t, afero.WriteFile(fs, "tasks.json", []byte(content), 0o644))

	_, err := loadTaskFile(fs, "tasks.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Urgent")
}

func TestLoadTaskFile_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := loadTaskFile(fs, "absent.yaml")
	assert.Error(t, err)
}

func TestLoadTaskFile_NotAList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tasks.yaml", []byte(`name: Build`), 0o644))

	_, err := loadTaskFile(fs, "tasks.yaml")
	assert.Error(t, err)
}
