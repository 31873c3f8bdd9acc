package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxyHeaders {
		// forwarded headers are client-controlled unless a proxy rewrites them
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json", "text/plain"))

		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.withAuthRateLimit)
				r.Post("/signup", h.signup)
				r.Post("/login", h.login)
			})
			r.Post("/logout", h.logout)
			r.Post("/check-duplicate", h.checkDuplicate)
			r.Post("/refresh", h.refresh)

			r.With(h.requireSession).Get("/session", h.session)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(h.requireSession)
			r.Get("/", h.getProfile)
			r.Post("/setup", h.setupProfile)
			r.Put("/update", h.updateProfile)
		})
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// pages: the guard reads the session attached by withSession
	router.Group(func(r chi.Router) {
		r.Use(h.withSession, h.guardRoutes)
		r.Get("/*", h.servePages())
		r.Head("/*", h.servePages())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
