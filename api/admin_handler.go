package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
)

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projects    projectStore
	skills      skillStore
	experiences experienceStore
	messages    contactStore
	events      analyticsStore
	startupTime time.Time
}

func newAdminHandler(
	projects projectStore,
	skills skillStore,
	experiences experienceStore,
	messages contactStore,
	events analyticsStore,
	startupTime time.Time,
	exposeDetails bool,
) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger, exposeDetails),
		logger:      logger,
		projects:    projects,
		skills:      skills,
		experiences: experiences,
		messages:    messages,
		events:      events,
		startupTime: startupTime,
	}
}

// DashboardResponse aggregates the counts shown on the admin landing view.
type DashboardResponse struct {
	Projects         int     `json:"projects"`
	Skills           int     `json:"skills"`
	Experiences      int     `json:"experiences"`
	Messages         int     `json:"messages"`
	UnreadMessages   int     `json:"unreadMessages"`
	EventsLast30Days int64   `json:"eventsLast30Days"`
	UptimeSeconds    float64 `json:"uptimeSeconds"`
}

// getDashboard collects entity counts for the admin landing view.
func (h adminHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(database.ListOptions{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}
		skills, err := h.skills.FindAll(database.ListOptions{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "skills", err))
			return
		}
		experiences, err := h.experiences.FindAll(database.ListOptions{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "experiences", err))
			return
		}
		messages, err := h.messages.FindAll(database.ListOptions{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contact messages", err))
			return
		}
		eventCount, err := h.events.CountSince(time.Now().AddDate(0, 0, -30))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "analytics events", err))
			return
		}

		unread := 0
		for _, m := range messages {
			if !m.IsRead {
				unread++
			}
		}

		h.responder.WriteJSON(w, DashboardResponse{
			Projects:         len(projects),
			Skills:           len(skills),
			Experiences:      len(experiences),
			Messages:         len(messages),
			UnreadMessages:   unread,
			EventsLast30Days: eventCount,
			UptimeSeconds:    time.Since(h.startupTime).Seconds(),
		})
	}
}
