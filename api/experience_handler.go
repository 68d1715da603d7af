package api

import (
	"bytes"
	"encoding/json"
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

// experienceStore is the slice of the experience repo the handler consumes.
type experienceStore interface {
	FindAll(database.ListOptions) ([]*models.Experience, error)
	FindByID(uuid.UUID) (*models.Experience, error)
	Add(*models.Experience) error
	Update(*models.Experience) error
	Delete(uuid.UUID) error
}

type experienceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	experiences experienceStore
}

func newExperienceHandler(experiences experienceStore, exposeDetails bool) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:   NewResponder(logger, exposeDetails),
		logger:      logger,
		experiences: experiences,
	}
}

// experiencePayload is the typed request contract for timeline writes.
// Description carries the ordered bullet points.
type experiencePayload struct {
	Title       *string   `json:"title"`
	Company     *string   `json:"company"`
	Period      *string   `json:"period"`
	Type        *string   `json:"type"`
	Description *[]string `json:"description"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	SortOrder   *int      `json:"sort_order"`
}

func (p experiencePayload) validate(requireAll bool) *errs.ApiErr {
	var fields errs.FieldList
	checkString(&fields, requireAll, "title", p.Title)
	checkString(&fields, requireAll, "company", p.Company)
	checkString(&fields, requireAll, "period", p.Period)
	checkEnum(&fields, false, "type", p.Type, models.ExperienceTypes)
	checkDate(&fields, "start_date", p.StartDate)
	checkDate(&fields, "end_date", p.EndDate)
	return fields.Err()
}

func (p experiencePayload) apply(experience *models.Experience) {
	if p.Title != nil {
		experience.Title = *p.Title
	}
	if p.Company != nil {
		experience.Company = *p.Company
	}
	if p.Period != nil {
		experience.Period = *p.Period
	}
	if p.Type != nil {
		experience.Type = *p.Type
	}
	if p.Description != nil {
		experience.Description = models.StringList(*p.Description)
	}
	if p.SortOrder != nil {
		experience.SortOrder = *p.SortOrder
	}
	var discard errs.FieldList
	if t := checkDate(&discard, "start_date", p.StartDate); t != nil {
		experience.StartDate = t
	}
	if t := checkDate(&discard, "end_date", p.EndDate); t != nil {
		experience.EndDate = t
	}
}

// ExperienceCollection represents the experience list response
type ExperienceCollection struct {
	Experiences []*models.Experience `json:"experiences"`
	Total       int                  `json:"total"`
}

// getAllExperiences retrieves all timeline entries, optionally filtered by
// ?type=experience or ?type=education.
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := parseListOptions(r, []string{"type", "company"}, nil)

		experiences, err := h.experiences.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, ExperienceCollection{
			Experiences: experiences,
			Total:       len(experiences),
		})
	}
}

// getExperience retrieves a specific timeline entry by ID
func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experiences.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// createExperience creates a new timeline entry
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload experiencePayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}

		if err := payload.validate(true); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience := &models.Experience{Type: models.ExperienceTypeWork}
		payload.apply(experience)

		if err := h.experiences.Add(experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, experience)
	}
}

// updateExperience applies a partial update to an existing timeline entry
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload experiencePayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}

		if err := payload.validate(false); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experiences.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		payload.apply(experience)

		if err := h.experiences.Update(experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// deleteExperience deletes a timeline entry by ID
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experiences.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		if err := h.experiences.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}
