package http

import (
	"net/http"
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// setSessionCookie attaches token to the response. It must run before the
// first body byte is written.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   token.MaxAge(time.Now()),
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// deleteSessionCookie expires the session cookie unconditionally.
func (h *Handler) deleteSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the raw token of r: the session cookie, or a bearer
// token for non-browser clients.
func (h *Handler) sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token
		}
	}

	return ""
}

// getSession returns the verified claims of r, or nil.
func (h *Handler) getSession(r *http.Request) *models.Claims {
	raw := h.sessionToken(r)
	if raw == "" {
		return nil
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), raw)
	if err != nil {
		return nil
	}

	return token.Claims
}
