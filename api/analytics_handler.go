package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/models"
)

// analyticsStore is the slice of the analytics repo the handler consumes.
type analyticsStore interface {
	Add(*models.AnalyticsEvent) error
	FindSince(time.Time) ([]*models.AnalyticsEvent, error)
	FindPage(since time.Time, offset, limit int) ([]*models.AnalyticsEvent, error)
	CountSince(time.Time) (int64, error)
}

type analyticsHandler struct {
	responder Responder
	logger    zerolog.Logger
	events    analyticsStore
}

func newAnalyticsHandler(events analyticsStore, exposeDetails bool) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		events:    events,
	}
}

// analyticsPayload is the typed request contract for tracking submissions.
type analyticsPayload struct {
	EventType *string        `json:"event_type"`
	Page      *string        `json:"page"`
	Metadata  map[string]any `json:"metadata"`
	Referrer  *string        `json:"referrer"`
}

// AnalyticsSummary is the windowed aggregate for the admin dashboard.
type AnalyticsSummary struct {
	TotalPageViews  int            `json:"totalPageViews"`
	TotalEvents     int            `json:"totalEvents"`
	PageViewsByPage map[string]int `json:"pageViewsByPage"`
	EventsByType    map[string]int `json:"eventsByType"`
	WindowDays      int            `json:"windowDays"`
}

// AnalyticsEventPage is one page of raw events for the detailed view.
type AnalyticsEventPage struct {
	Events []*models.AnalyticsEvent `json:"events"`
	Total  int64                    `json:"total"`
	Offset int                      `json:"offset"`
	Limit  int                      `json:"limit"`
}

const defaultWindowDays = 30

// recordPageView appends one page_view row. Tracking must never break the
// visitor experience: storage failures are logged and the endpoint still
// reports success.
func (h analyticsHandler) recordPageView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.record(w, r, models.EventTypePageView)
	}
}

// recordEvent appends one row of the caller-specified event type, with the
// same swallow-on-failure contract as recordPageView.
func (h analyticsHandler) recordEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.record(w, r, "")
	}
}

func (h analyticsHandler) record(w http.ResponseWriter, r *http.Request, forcedType string) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read tracking request body")
		h.writeAccepted(w)
		return
	}

	var payload analyticsPayload
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode tracking request body")
		h.writeAccepted(w)
		return
	}

	eventType := forcedType
	if eventType == "" {
		if payload.EventType == nil || *payload.EventType == "" {
			h.logger.Warn().Msg("Tracking event without event_type dropped")
			h.writeAccepted(w)
			return
		}
		eventType = *payload.EventType
	}

	event := &models.AnalyticsEvent{
		EventType: eventType,
		Metadata:  models.JSONMap(payload.Metadata),
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	}
	if payload.Page != nil {
		event.Page = *payload.Page
	}
	if payload.Referrer != nil {
		event.Referrer = *payload.Referrer
	}

	if err := h.events.Add(event); err != nil {
		h.logger.Error().Err(err).Str("eventType", eventType).Msg("Failed to record analytics event")
	}

	h.writeAccepted(w)
}

func (h analyticsHandler) writeAccepted(w http.ResponseWriter) {
	h.responder.WriteJSON(w, map[string]string{"status": "success"})
}

// getSummary aggregates the trailing window (?days=, default 30) in memory.
func (h analyticsHandler) getSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		windowDays := windowDaysParam(r)
		since := time.Now().AddDate(0, 0, -windowDays)

		events, err := h.events.FindSince(since)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "analytics events", err))
			return
		}

		summary := AnalyticsSummary{
			PageViewsByPage: make(map[string]int),
			EventsByType:    make(map[string]int),
			WindowDays:      windowDays,
		}
		for _, event := range events {
			summary.TotalEvents++
			summary.EventsByType[event.EventType]++
			if event.EventType == models.EventTypePageView {
				summary.TotalPageViews++
				summary.PageViewsByPage[event.Page]++
			}
		}

		h.responder.WriteJSON(w, summary)
	}
}

// getDetailed returns one page of raw events within the window for the
// admin's event browser.
func (h analyticsHandler) getDetailed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		windowDays := windowDaysParam(r)
		since := time.Now().AddDate(0, 0, -windowDays)

		offset := 0
		if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
			offset = v
		}
		limit := 50
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 500 {
			limit = v
		}

		total, err := h.events.CountSince(since)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "analytics events", err))
			return
		}

		events, err := h.events.FindPage(since, offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "analytics events", err))
			return
		}

		h.responder.WriteJSON(w, AnalyticsEventPage{
			Events: events,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		})
	}
}

func windowDaysParam(r *http.Request) int {
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 && v <= 365 {
		return v
	}
	return defaultWindowDays
}
