package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskqueue/taskqueue-go/models"
)

func projectJSON(id uuid.UUID, name string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"name": %q,
		"status": "Active",
		"created_at": "2025-08-01T10:00:00Z",
		"updated_at": "2025-08-01T10:00:00Z"
	}`, id, name)
}

func TestCreateProject(t *testing.T) {
	projectID := uuid.New()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/projects", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, projectJSON(projectID, "Platform"))
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)
	project, err := c.CreateProject(context.Background(), models.NewProjectCreateRequest("Platform"))
	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
	assert.Equal(t, "Platform", project.Name)
	assert.Equal(t, []any{}, gotBody["tags"])
}

func TestCreateProject_EmptyNameRejectedLocally(t *testing.T) {
	c, _ := newTestClient("http://localhost:1")
	_, err := c.CreateProject(context.Background(), models.ProjectCreateRequest{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, verr.StatusCode)
}

func TestGetProject_Upgrades404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "not here"}`)
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)
	_, err := c.GetProject(context.Background(), "proj-9")

	var pnf *ProjectNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Contains(t, pnf.Message, "proj-9")
}

func TestListProjects(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()

	t.Run("envelope response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"projects": [%s, %s]}`, projectJSON(id1, "A"), projectJSON(id2, "B"))
		}))
		defer server.Close()

		c, _ := newTestClient(server.URL)
		projects, err := c.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "A", projects[0].Name)
	})

	t.Run("bare array response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `[%s]`, projectJSON(id1, "A"))
		}))
		defer server.Close()

		c, _ := newTestClient(server.URL)
		projects, err := c.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 1)
	})
}

func TestUpdateProject_SendsOnlySuppliedFields(t *testing.T) {
	projectID := uuid.New()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, projectJSON(projectID, "Renamed"))
	}))
	defer server.Close()

	status := models.ProjectOnHold
	c, _ := newTestClient(server.URL)
	project, err := c.UpdateProject(context.Background(), projectID.String(), models.ProjectUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", project.Name)

	assert.Equal(t, map[string]any{"status": "OnHold"}, gotBody)
}

func TestDeleteProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		fmt.Fprint(w, `{"message": "deleted"}`)
	}))
	defer server.Close()

	c, _ := newTestClient(server.URL)
	require.NoError(t, c.DeleteProject(context.Background(), uuid.New().String()))
}
