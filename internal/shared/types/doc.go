// Package types provides shared data structures for the gaussvar service.
//
// Core Types:
//   - Service, Tool, Parameter, DataModel: provider metadata
//   - Context: caller information passed into tool execution
//   - Result: uniform tool execution result
//
// Request Types:
//   - ExecuteRequest: tool execution over HTTP
//   - DiscoverRequest: intent-based service discovery
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "gaussian.add", map[string]interface{}{
//	    "a": map[string]interface{}{"mean": 1.0, "standard_deviation": 0.1},
//	    "b": map[string]interface{}{"mean": 2.0, "standard_deviation": 0.2},
//	}, nil)
package types
