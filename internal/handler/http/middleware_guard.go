// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
)

// RouteClass is the access class of a page route.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteProtected
	RouteAuthOnly
)

func (c RouteClass) String() string {
	switch c {
	case RouteProtected:
		return "protected"
	case RouteAuthOnly:
		return "auth-only"
	default:
		return "public"
	}
}

// RouteGuard decides whether a page request passes or is redirected,
// based only on its path and whether it carries a valid session.
// It never creates or destroys sessions.
type RouteGuard struct {
	protected []string
	authOnly  []string
	loginPath string
	homePath  string
}

// NewRouteGuard builds a guard from the prefix lists of cfg.
func NewRouteGuard(cfg config.Server) *RouteGuard {
	g := &RouteGuard{
		protected: normalizePrefixes(cfg.ProtectedRoutes),
		authOnly:  normalizePrefixes(cfg.AuthOnlyRoutes),
		loginPath: cfg.LoginPath,
		homePath:  cfg.HomePath,
	}
	if g.loginPath == "" {
		g.loginPath = "/login"
	}
	if g.homePath == "" {
		g.homePath = "/dashboard"
	}
	return g
}

// Classify returns the class of path. Prefixes match whole path segments,
// so "/profile" covers "/profile/edit" but not "/profiles".
func (g *RouteGuard) Classify(path string) RouteClass {
	switch {
	case matchesAny(path, g.protected):
		return RouteProtected
	case matchesAny(path, g.authOnly):
		return RouteAuthOnly
	default:
		return RoutePublic
	}
}

// Redirect returns the redirect target for a request to path, or false
// when the request passes through:
//
//	protected + no session    -> login path
//	auth-only + valid session -> home path
func (g *RouteGuard) Redirect(path string, hasSession bool) (string, bool) {
	switch class := g.Classify(path); {
	case class == RouteProtected && !hasSession:
		return g.loginPath, true
	case class == RouteAuthOnly && hasSession:
		return g.homePath, true
	default:
		return "", false
	}
}

// guardRoutes applies the route guard to page requests. It expects
// withSession to have run before it.
func (h *Handler) guardRoutes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSession := utils.ClaimsFromContext(r.Context())

		if target, ok := h.guard.Redirect(r.URL.Path, hasSession); ok {
			logger.FromRequest(r).Debug().
				Str("path", r.URL.Path).
				Str("target", target).
				Bool("session", hasSession).
				Msg("route guard redirect")
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func normalizePrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		if len(p) > 1 {
			p = strings.TrimSuffix(p, "/")
		}
		out = append(out, p)
	}
	return out
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPathPrefix(path, p) {
			return true
		}
	}
	return false
}

func hasPathPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
