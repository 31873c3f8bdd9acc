package http

import (
	"net/http"
)

// servePages serves the prebuilt pages from the configured directory.
// Without a directory every page route answers 404; the guard still runs
// first, so redirects work either way.
func (h *Handler) servePages() http.HandlerFunc {
	if h.pagesDir == "" {
		return http.NotFound
	}

	files := http.FileServer(http.Dir(h.pagesDir))
	return func(w http.ResponseWriter, r *http.Request) {
		files.ServeHTTP(w, r)
	}
}
