// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 whenever a path matches
// a registered route but the method is not handled. This handler responds
// with HTTP 404 instead, hiding the existence of the route from callers that
// use an unsupported method. API paths get the JSON error body every other
// API failure uses.
//
// If a top-level route with exactly the requested pattern does handle the
// method, the request is forwarded to the router's normal pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		if strings.HasPrefix(r.URL.Path, "/api/") {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Not found"}, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}
}
