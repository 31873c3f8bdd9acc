package http

import (
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/validators"
)

const defaultCookieName = "session"

type Handler struct {
	services  *service.Services
	validator validators.Validator

	guard             *RouteGuard
	authLimiter       *ipRateLimiter
	trustProxyHeaders bool

	cookieName     string
	secureCookie   bool
	pagesDir       string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. secureCookie marks the session cookie
// Secure and should be true in production only.
func NewHandler(services *service.Services, cfg config.Server, secureCookie bool, logger *logger.Logger) *Handler {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewAccountValidator(),
		guard:          NewRouteGuard(cfg),
		authLimiter:    newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		cookieName:     cookieName,
		secureCookie:   secureCookie,
		pagesDir:       cfg.PagesDir,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,

		trustProxyHeaders: cfg.TrustProxyHeaders,
	}
}
