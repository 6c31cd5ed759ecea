// Package trace provides the tracing and logging subsystem for jsxform.
//
// Passes, rewrite rules and the import registry report what they do through
// a Tracer carried in the context. Output is either human-readable text or
// newline-delimited JSON.
//
// # Usage
//
//	jsxform imports --trace=- --trace-level=debug plan.toml
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only explicit error events
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file processing
//   - LevelDebug: Everything, including individual import requests
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "transform", parentID)
//	defer span.End("")
package trace
