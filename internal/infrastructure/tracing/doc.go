// Package tracing provides lightweight request tracing.
//
// Every HTTP request gets a span. Trace and span IDs are ULIDs from the id
// package. They travel in the X-Trace-ID and X-Span-ID headers and in the
// request context, so providers can tag their log lines with the trace.
// Finished spans are logged asynchronously through zap.
//
// Example Usage:
//
//	tracer := tracing.New("gaussvar", logger.Logger)
//	router.Use(tracing.HTTPMiddleware(tracer))
//
//	traceID := tracing.GetTraceID(ctx)
package tracing
