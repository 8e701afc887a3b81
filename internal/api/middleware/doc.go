// Package middleware provides the HTTP middleware shared by the API:
// CORS headers and per-client or global rate limiting.
package middleware
