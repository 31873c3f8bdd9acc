package http

import (
	"errors"
	"net/http"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
)

const msgInternalError = "Internal server error"

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided"},
	{service.ErrInvalidPassword, http.StatusBadRequest, "Password must be 8 to 72 characters long"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Unauthorized"},
	{ErrNoSession, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrAccountSuspended, http.StatusForbidden, "Account is suspended"},
	{store.ErrStoreForbidden, http.StatusForbidden, "Forbidden"},
	{store.ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{store.ErrAccountAlreadyExists, http.StatusConflict, "An account with this name or email already exists"},
	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
}

// statusFromError maps err onto an HTTP status. Unknown errors, including
// store.ErrUpstream, map to 500.
func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

func lookupError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError writes the JSON error body for err. Internal details never
// reach the client; validation failures carry their per-field messages.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := lookupError(err)

	body := models.ErrorResponse{Error: message}
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		body.Fields = verrs
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, body, status); werr != nil {
		log.Err(werr).Msg("failed to write error response")
	}
}
