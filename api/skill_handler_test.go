package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func postSkill(h skillHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/skills", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.createSkill()(rec, req)
	return rec
}

func TestCreateSkillRejectsLevelOutOfRange(t *testing.T) {
	store := &fakeSkillStore{}
	h := newSkillHandler(store, true)

	rec := postSkill(h, `{"name":"Go","level":150,"category":"backend"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	// Rejected before any storage call
	assert.Zero(t, store.writes)

	var resp struct {
		Fields []errs.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "level", resp.Fields[0].Field)
}

func TestCreateSkillRejectsNegativeLevel(t *testing.T) {
	store := &fakeSkillStore{}
	h := newSkillHandler(store, true)

	rec := postSkill(h, `{"name":"Go","level":-1,"category":"backend"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.writes)
}

func TestCreateSkillAcceptsBoundaryLevels(t *testing.T) {
	for _, level := range []int{0, 100} {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			store := &fakeSkillStore{}
			h := newSkillHandler(store, true)

			rec := postSkill(h, fmt.Sprintf(`{"name":"Go","level":%d,"category":"backend"}`, level))

			require.Equal(t, http.StatusCreated, rec.Code)
			require.Len(t, store.skills, 1)
			assert.Equal(t, level, store.skills[0].Level)
		})
	}
}

func TestCreateSkillListsEveryFailingField(t *testing.T) {
	store := &fakeSkillStore{}
	h := newSkillHandler(store, true)

	rec := postSkill(h, `{"level":150}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields []errs.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	names := make([]string, len(resp.Fields))
	for i, f := range resp.Fields {
		names[i] = f.Field
	}
	assert.ElementsMatch(t, []string{"name", "level", "category"}, names)
}

func TestDeleteSkillReturnsNotFoundForMissingID(t *testing.T) {
	store := &fakeSkillStore{}
	h := newSkillHandler(store, true)

	req := httptest.NewRequest(http.MethodDelete, "/skills/6a5e0f34-2f3b-41c6-9577-6f3bb22e7b57", nil)
	req = withURLParam(req, "skillID", "6a5e0f34-2f3b-41c6-9577-6f3bb22e7b57")
	rec := httptest.NewRecorder()

	h.deleteSkill()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, store.writes)
}

func TestReplaceAllSkillsAssignsSortOrder(t *testing.T) {
	store := &fakeSkillStore{skills: []*models.Skill{{Name: "Old", Level: 5, Category: "legacy"}}}
	h := newSkillHandler(store, true)

	body := `[{"name":"A","level":10,"category":"backend"},{"name":"B","level":20,"category":"backend"}]`
	req := httptest.NewRequest(http.MethodPut, "/skills/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.replaceAllSkills()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.skills, 2)
	assert.Equal(t, "A", store.skills[0].Name)
	assert.Equal(t, 0, store.skills[0].SortOrder)
	assert.Equal(t, "B", store.skills[1].Name)
	assert.Equal(t, 1, store.skills[1].SortOrder)
}

func TestReplaceAllSkillsNamesOffendingElement(t *testing.T) {
	store := &fakeSkillStore{}
	h := newSkillHandler(store, true)

	body := `[{"name":"A","level":10,"category":"backend"},{"name":"B","level":200,"category":"backend"}]`
	req := httptest.NewRequest(http.MethodPut, "/skills/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.replaceAllSkills()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.writes)

	var resp struct {
		Fields []errs.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "skills[1].level", resp.Fields[0].Field)
}
