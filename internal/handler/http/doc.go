// Package http implements the HTTP transport layer of crrd.
//
// It exposes route wiring, request handlers, and middleware for the public
// site: registration, login, the authenticated dashboard, password reset,
// and the catch-all public profile page. Cross-cutting concerns such as
// session loading, request tracing, access logging, metrics, rate limiting,
// and response compression are handled in this package before requests are
// delegated to the service layer.
package http
