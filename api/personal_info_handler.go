package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// personalInfoStore is the slice of the profile repo the handler consumes.
type personalInfoStore interface {
	Get() (*models.PersonalInfo, error)
	Upsert(*models.PersonalInfo) error
}

type personalInfoHandler struct {
	responder Responder
	logger    zerolog.Logger
	info      personalInfoStore
}

func newPersonalInfoHandler(info personalInfoStore, exposeDetails bool) personalInfoHandler {
	logger := log.With().Str("handlerName", "personalInfoHandler").Logger()

	return personalInfoHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		info:      info,
	}
}

// personalInfoPayload is the typed request contract for the profile record.
// The row is mutated wholesale, so every field is applied on PUT.
type personalInfoPayload struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	Bio         *string `json:"bio"`
	Journey     *string `json:"journey"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
	ResumeURL   *string `json:"resume_url"`
}

func (p personalInfoPayload) validate() *errs.ApiErr {
	var fields errs.FieldList
	checkString(&fields, true, "name", p.Name)
	checkString(&fields, true, "title", p.Title)
	checkEmail(&fields, true, "email", p.Email)
	return fields.Err()
}

func (p personalInfoPayload) apply(info *models.PersonalInfo) {
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Title != nil {
		info.Title = *p.Title
	}
	if p.Email != nil {
		info.Email = *p.Email
	}
	if p.Phone != nil {
		info.Phone = *p.Phone
	}
	if p.Location != nil {
		info.Location = *p.Location
	}
	if p.Bio != nil {
		info.Bio = *p.Bio
	}
	if p.Journey != nil {
		info.Journey = *p.Journey
	}
	if p.GithubURL != nil {
		info.GithubURL = *p.GithubURL
	}
	if p.LinkedinURL != nil {
		info.LinkedinURL = *p.LinkedinURL
	}
	if p.TwitterURL != nil {
		info.TwitterURL = *p.TwitterURL
	}
	if p.ResumeURL != nil {
		info.ResumeURL = *p.ResumeURL
	}
}

// getPersonalInfo returns the singleton profile record
func (h personalInfoHandler) getPersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.info.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "personal info", err))
			return
		}
		if info == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("personal info not set"))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// updatePersonalInfo replaces the profile record wholesale
func (h personalInfoHandler) updatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload personalInfoPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode personal info request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("personal info", err))
			return
		}

		if err := payload.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info := &models.PersonalInfo{}
		payload.apply(info)

		if err := h.info.Upsert(info); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "personal info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}
