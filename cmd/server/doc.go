// Package main is the entry point for the gaussvar server.
//
// The server exposes gaussian uncertainty propagation as tools over HTTP.
// Configuration comes from environment variables (see
// internal/infrastructure/config). Flags override them.
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (console logs, debug level)
//	./server -dev
//
//	# Custom guard thresholds
//	GAUSS_PRODUCT_CV_LIMIT=0.2 ./server
//	./server -thresholds thresholds.yaml
package main
