package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// skillStore is the slice of the skill repo the handler consumes.
type skillStore interface {
	FindAll(database.ListOptions) ([]*models.Skill, error)
	FindByID(uuid.UUID) (*models.Skill, error)
	Add(*models.Skill) error
	Update(*models.Skill) error
	Delete(uuid.UUID) error
	ReplaceAll([]*models.Skill) error
}

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    skillStore
}

func newSkillHandler(skills skillStore, exposeDetails bool) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		skills:    skills,
	}
}

// skillPayload is the typed request contract for skill writes. Level must
// sit inside [0,100]; both boundaries are valid.
type skillPayload struct {
	Name       *string `json:"name"`
	Level      *int    `json:"level"`
	Category   *string `json:"category"`
	Icon       *string `json:"icon"`
	SortOrder  *int    `json:"sort_order"`
	IsFeatured *bool   `json:"is_featured"`
}

func (p skillPayload) validate(requireAll bool) *errs.ApiErr {
	var fields errs.FieldList
	p.validateInto(&fields, requireAll, "")
	return fields.Err()
}

// validateInto records failures with an optional field-name prefix so bulk
// submissions can name the offending element ("skills[2].level").
func (p skillPayload) validateInto(l *errs.FieldList, requireAll bool, prefix string) {
	checkString(l, requireAll, prefix+"name", p.Name)
	checkRange(l, requireAll, prefix+"level", p.Level, 0, 100)
	checkString(l, requireAll, prefix+"category", p.Category)
}

func (p skillPayload) apply(skill *models.Skill) {
	if p.Name != nil {
		skill.Name = *p.Name
	}
	if p.Level != nil {
		skill.Level = *p.Level
	}
	if p.Category != nil {
		skill.Category = *p.Category
	}
	if p.Icon != nil {
		skill.Icon = *p.Icon
	}
	if p.SortOrder != nil {
		skill.SortOrder = *p.SortOrder
	}
	if p.IsFeatured != nil {
		skill.IsFeatured = *p.IsFeatured
	}
}

// SkillCollection represents the skill list response
type SkillCollection struct {
	Skills []*models.Skill `json:"skills"`
	Total  int             `json:"total"`
}

// getAllSkills retrieves all skills ordered by sort_order, optionally
// filtered by ?category= or ?is_featured=.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := parseListOptions(r, []string{"category"}, []string{"is_featured"})

		skills, err := h.skills.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, SkillCollection{
			Skills: skills,
			Total:  len(skills),
		})
	}
}

// createSkill creates a new skill
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload skillPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skill", err))
			return
		}

		if err := payload.validate(true); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := &models.Skill{}
		payload.apply(skill)

		if err := h.skills.Add(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// updateSkill applies a partial update to an existing skill
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload skillPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skill", err))
			return
		}

		if err := payload.validate(false); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		payload.apply(skill)

		if err := h.skills.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill deletes a skill by ID
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

// replaceAllSkills swaps the entire skills table for the submitted list in
// one transaction. sort_order follows submission order, starting at 0.
func (h skillHandler) replaceAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payloads []skillPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payloads); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skills request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skills", err))
			return
		}

		var fields errs.FieldList
		for i, payload := range payloads {
			payload.validateInto(&fields, true, fmt.Sprintf("skills[%d].", i))
		}
		if err := fields.Err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skills := make([]*models.Skill, len(payloads))
		for i, payload := range payloads {
			skill := &models.Skill{}
			payload.apply(skill)
			skill.SortOrder = i
			skills[i] = skill
		}

		if err := h.skills.ReplaceAll(skills); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace", "skills", err))
			return
		}

		h.responder.WriteJSON(w, SkillCollection{
			Skills: skills,
			Total:  len(skills),
		})
	}
}
