// Package http implements the HTTP transport layer of the application.
//
// It exposes the JSON API under /api (signup, login, logout, session,
// refresh, duplicate checks and profile writes), the Prometheus endpoint and
// the guarded page routes. Cross-cutting concerns such as session cookies,
// request tracing, access logging, rate limiting and redirects for page
// routes are handled in this package before requests are delegated to the
// service layer.
package http
