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

// contactStore is the slice of the contact-message repo the handler consumes.
type contactStore interface {
	FindAll(database.ListOptions) ([]*models.ContactMessage, error)
	FindByID(uuid.UUID) (*models.ContactMessage, error)
	Add(*models.ContactMessage) error
	MarkRead(uuid.UUID) error
}

// contactNotifier pushes operator notifications about new submissions.
type contactNotifier interface {
	ContactMessageReceived(*models.ContactMessage)
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  contactStore
	notifier  contactNotifier
}

func newContactHandler(messages contactStore, notifier contactNotifier, exposeDetails bool) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		messages:  messages,
		notifier:  notifier,
	}
}

// contactPayload is the typed request contract for the public contact form.
type contactPayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (p contactPayload) validate() *errs.ApiErr {
	var fields errs.FieldList
	checkString(&fields, true, "name", p.Name)
	checkEmail(&fields, true, "email", p.Email)
	checkString(&fields, true, "subject", p.Subject)
	checkString(&fields, true, "message", p.Message)
	return fields.Err()
}

// ContactMessageCollection represents the admin message list response
type ContactMessageCollection struct {
	Messages []*models.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
}

// submitContact records a public contact-form submission, capturing request
// metadata, and notifies the operator out of band.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload contactPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if err := payload.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := &models.ContactMessage{
			Name:      *payload.Name,
			Email:     *payload.Email,
			Subject:   *payload.Subject,
			Message:   *payload.Message,
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		}

		if err := h.messages.Add(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		// Notification delivery never affects the visitor's response.
		if h.notifier != nil {
			go h.notifier.ContactMessageReceived(message)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}

// listMessages returns messages for the admin inbox, newest first,
// optionally filtered by ?is_read= and paged with ?offset= / ?limit=.
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := parseListOptions(r, nil, []string{"is_read"})

		messages, err := h.messages.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, ContactMessageCollection{
			Messages: messages,
			Total:    len(messages),
		})
	}
}

// markMessageRead flips is_read on one message
func (h contactHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		// gorm.ErrRecordNotFound maps to 404 through the database error wrapper
		if err := h.messages.MarkRead(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("mark read", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message marked as read",
		})
	}
}
