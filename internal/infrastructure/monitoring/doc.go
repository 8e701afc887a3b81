/*
Package monitoring provides Prometheus metrics for the gaussvar service.

# Overview

Each Metrics value owns its own registry, so several servers (or tests) can
coexist in one process. The registry is exposed at /metrics.

# Features

- HTTP request metrics (count, latency) labelled by route template
- Tool execution metrics (count, latency, status)
- Guard rejections by operation and failure kind
- Random draw counts and process uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "gaussian", "gaussian.divide")
	defer timer.Stop("success")
*/
package monitoring
