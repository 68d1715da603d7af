package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/models"
)

func TestCreateProjectRoundTrip(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	body := `{
		"title": "Portfolio Site",
		"description": "This very site",
		"category": "web",
		"technologies": ["Go", "Postgres"],
		"github_url": "https://github.com/example/portfolio",
		"featured": true,
		"status": "completed",
		"sort_order": 3,
		"start_date": "2024-01-15"
	}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createProject()(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Server assigned id and timestamps
	assert.NotEqual(t, created.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, created.CreatedAt.IsZero())

	// get returns the record equal to the input on whitelisted fields
	getReq := httptest.NewRequest(http.MethodGet, "/projects/"+created.ID.String(), nil)
	getReq = withURLParam(getReq, "projectID", created.ID.String())
	getRec := httptest.NewRecorder()
	h.getProject()(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched models.Project
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, "Portfolio Site", fetched.Title)
	assert.Equal(t, "This very site", fetched.Description)
	assert.Equal(t, "web", fetched.Category)
	assert.Equal(t, models.StringList{"Go", "Postgres"}, fetched.Technologies)
	assert.True(t, fetched.Featured)
	assert.Equal(t, "completed", fetched.Status)
	assert.Equal(t, 3, fetched.SortOrder)
	require.NotNil(t, fetched.StartDate)
}

func TestCreateProjectRejectsUnknownStatus(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	body := `{"title":"X","description":"Y","category":"web","status":"abandoned"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createProject()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.writes)
}

func TestCreateProjectRejectsBadDate(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	body := `{"title":"X","description":"Y","category":"web","start_date":"soonish"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createProject()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.writes)
}

func TestUpdateProjectAppliesOnlyProvidedFields(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	project := &models.Project{
		Title:       "Original",
		Description: "Original description",
		Category:    "web",
		Status:      models.ProjectStatusInProgress,
	}
	require.NoError(t, store.Add(project))

	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPut, "/projects/"+project.ID.String(), strings.NewReader(body))
	req = withURLParam(req, "projectID", project.ID.String())
	rec := httptest.NewRecorder()

	h.updateProject()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	updated := store.projects[project.ID]
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
}

func TestUpdateProjectReturnsNotFoundForMissingID(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	req := httptest.NewRequest(http.MethodPut, "/projects/0e9af1f2-8c15-4f6a-b2c9-0f0f6e1d2a3b",
		strings.NewReader(`{"title":"X"}`))
	req = withURLParam(req, "projectID", "0e9af1f2-8c15-4f6a-b2c9-0f0f6e1d2a3b")
	rec := httptest.NewRecorder()

	h.updateProject()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProjectIsNotFoundAfterDeletion(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, true)

	project := &models.Project{Title: "Doomed", Description: "D", Category: "web"}
	require.NoError(t, store.Add(project))

	del := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil)
		req = withURLParam(req, "projectID", project.ID.String())
		rec := httptest.NewRecorder()
		h.deleteProject()(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, del().Code)
	// Second delete surfaces NotFound, not a crash
	assert.Equal(t, http.StatusNotFound, del().Code)
}

func TestGetProjectRejectsMalformedID(t *testing.T) {
	h := newProjectHandler(newFakeProjectStore(), true)

	req := httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	req = withURLParam(req, "projectID", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.getProject()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
