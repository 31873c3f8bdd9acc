package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.startSession(w, r, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", account.ID).Msg("account logged in")
	h.startSession(w, r, account, http.StatusOK)
}

// startSession issues a session token for account, sets the cookie and
// writes the public account view.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, account models.Account, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account, models.SessionToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	h.writeJSON(w, r, models.UserResponse{User: account.Public(token.Claims.IsAdmin)}, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.deleteSessionCookie(w)
	h.writeJSON(w, r, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: claims.Session()}, http.StatusOK)
}

// refresh reissues the current token with the refresh lifetime. The
// incoming token must itself be valid.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	raw := h.sessionToken(r)
	if raw == "" {
		h.writeError(w, r, ErrNoSession)
		return
	}

	token, err := h.services.AuthService.Refresh(r.Context(), raw)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	h.writeJSON(w, r, models.UserResponse{User: token.Claims.Session()}, http.StatusOK)
}

func (h *Handler) checkDuplicate(w http.ResponseWriter, r *http.Request) {
	var req models.DuplicateCheckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	exists, err := h.services.DuplicateChecker.ExistsAny(r.Context(), req.FullName, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.DuplicateCheckResponse{Exists: exists}, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
