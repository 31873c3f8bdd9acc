package http

import (
	"net/http"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
)

// withSession verifies the session of the request, if any, and stores the
// claims in the request context under [utils.ClaimsCtxKey]. Requests without
// a valid session pass through unchanged.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := h.getSession(r); claims != nil {
			r = r.WithContext(utils.WithClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession rejects requests without a valid session with HTTP 401 and
// a JSON error body. API routes use it instead of redirects.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.ClaimsFromContext(r.Context())
		if !ok {
			claims = h.getSession(r)
		}
		if claims == nil {
			h.writeError(w, r, ErrNoSession)
			return
		}

		ctx := utils.WithClaims(r.Context(), claims)
		l := logger.FromContext(ctx).With().Str("account_id", claims.UserID()).Logger()
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
