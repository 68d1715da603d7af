package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	tokens    *auth.TokenManager
	username  string
	password  string
}

func newAuthHandler(tokens *auth.TokenManager, username, password string, exposeDetails bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		tokens:    tokens,
		username:  username,
		password:  password,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and its lifetime in seconds.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// login validates the single shared credential pair and issues a signed
// 24-hour admin token. There is one operator; there are no accounts.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if !auth.VerifyCredentials(req.Username, req.Password, h.username, h.password) {
			h.logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, expiresIn, err := h.tokens.Issue(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token:     token,
			ExpiresIn: expiresIn,
		})
	}
}
