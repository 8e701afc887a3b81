// Package server assembles the HTTP server: it builds the logger, metrics,
// tracer and service registry from configuration, registers the gaussian
// provider and mounts the API routes.
package server
