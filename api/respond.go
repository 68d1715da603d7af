package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
	// exposeDetails controls whether upstream error details and causes are
	// included in responses. Off in production.
	exposeDetails bool
}

func NewResponder(logger zerolog.Logger, exposeDetails bool) Responder {
	return Responder{logger: logger, exposeDetails: exposeDetails}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Check if response is too large (e.g., > 10MB)
	const maxResponseSize = 10 * 1024 * 1024 // 10MB
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large, truncating")

		truncatedResponse := map[string]interface{}{
			"error":     "Response too large",
			"message":   "The requested data exceeds the maximum response size",
			"maxSizeMB": maxResponseSize / (1024 * 1024),
		}

		truncatedJSON, err := json.Marshal(truncatedResponse)
		if err != nil {
			r.logger.Error().Err(err).Msg("error marshaling truncated response")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write(truncatedJSON)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		response := map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
			"status":  "error",
		}
		if r.exposeDetails {
			response["details"] = err.Error()
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.writeBody(w, response)
		return
	}

	// Build response based on error details
	response := map[string]interface{}{
		"error":  apiErr.Error(),
		"status": "error",
	}

	// Validation errors always name their failing fields
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if len(apiErr.Fields) > 0 {
		response["fields"] = apiErr.Fields
	}

	// Upstream details and causes stay server-side in production
	if r.exposeDetails {
		if apiErr.Details != "" {
			response["details"] = apiErr.Details
		}
		if apiErr.Cause != nil {
			response["cause"] = apiErr.GetFullError()
		}
	} else if apiErr.StatusCode < http.StatusInternalServerError && apiErr.Details != "" {
		// Client errors keep their details; they describe the caller's input.
		response["details"] = apiErr.Details
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("error", apiErr.GetFullError()).Msg("request failed")
		// Hide the upstream message itself in production
		if !r.exposeDetails {
			response["error"] = "Internal Server Error"
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.writeBody(w, response)
}

func (r Responder) writeBody(w http.ResponseWriter, response map[string]interface{}) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling error response")
		return
	}
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
