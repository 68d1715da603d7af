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

// projectStore is the slice of the project repo the handler consumes.
type projectStore interface {
	FindAll(database.ListOptions) ([]*models.Project, error)
	FindByID(uuid.UUID) (*models.Project, error)
	Add(*models.Project) error
	Update(*models.Project) error
	Delete(uuid.UUID) error
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
}

func newProjectHandler(projects projectStore, exposeDetails bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		projects:  projects,
	}
}

// projectPayload is the typed request contract for project writes. Pointer
// fields distinguish "absent" from "zero": create requires the core fields,
// update applies only what the caller sent. Only fields named here ever
// reach storage.
type projectPayload struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	ImageURL     *string   `json:"image_url"`
	Featured     *bool     `json:"featured"`
	Status       *string   `json:"status"`
	SortOrder    *int      `json:"sort_order"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
}

func (p projectPayload) validate(requireAll bool) *errs.ApiErr {
	var fields errs.FieldList
	checkString(&fields, requireAll, "title", p.Title)
	checkString(&fields, requireAll, "description", p.Description)
	checkString(&fields, requireAll, "category", p.Category)
	checkEnum(&fields, false, "status", p.Status, models.ProjectStatuses)
	checkDate(&fields, "start_date", p.StartDate)
	checkDate(&fields, "end_date", p.EndDate)
	return fields.Err()
}

// apply copies the whitelisted fields onto the model. Dates were validated
// beforehand, so parse failures cannot reach this point.
func (p projectPayload) apply(project *models.Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Category != nil {
		project.Category = *p.Category
	}
	if p.Technologies != nil {
		project.Technologies = models.StringList(*p.Technologies)
	}
	if p.GithubURL != nil {
		project.GithubURL = *p.GithubURL
	}
	if p.LiveURL != nil {
		project.LiveURL = *p.LiveURL
	}
	if p.ImageURL != nil {
		project.ImageURL = *p.ImageURL
	}
	if p.Featured != nil {
		project.Featured = *p.Featured
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.SortOrder != nil {
		project.SortOrder = *p.SortOrder
	}
	var discard errs.FieldList
	if t := checkDate(&discard, "start_date", p.StartDate); t != nil {
		project.StartDate = t
	}
	if t := checkDate(&discard, "end_date", p.EndDate); t != nil {
		project.EndDate = t
	}
}

// ProjectCollection represents the project list response
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects ordered by sort_order, optionally
// filtered by ?category=, ?status= or ?featured=.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := parseListOptions(r, []string{"category", "status"}, []string{"featured"})

		projects, err := h.projects.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := payload.validate(true); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := &models.Project{Status: models.ProjectStatusCompleted}
		payload.apply(project)

		if err := h.projects.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projects.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject applies a partial update to an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := payload.validate(false); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		payload.apply(project)

		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
