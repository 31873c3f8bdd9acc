package http

import (
	"net/http"

	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// Profile routes run behind requireSession, so claims are always present;
// the account id is taken from them, never from the request body.

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	account, err := h.services.ProfileService.GetProfile(r.Context(), claims.UserID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: account.Public(claims.IsAdmin)}, http.StatusOK)
}

func (h *Handler) setupProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	var setup models.ProfileSetup
	if err := decodeJSON(w, r, &setup); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.ProfileService.SetupProfile(r.Context(), claims.UserID(), setup)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: account.Public(claims.IsAdmin)}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	var update models.ProfileUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.ProfileService.UpdateProfile(r.Context(), claims.UserID(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: account.Public(claims.IsAdmin)}, http.StatusOK)
}
