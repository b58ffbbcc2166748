// Package trace records what the lexkit driver is doing while it works.
//
// Events are spans (begin/end pairs) and points, tagged with a scope:
//
//   - ScopeDriver: one CLI command
//   - ScopePass: a stage such as loading or the parallel scan
//   - ScopeFile: work on a single input file
//   - ScopeToken: cache lookups and other per-file detail
//
// A Level picks how deep the recorded scopes go. LevelPhase keeps driver
// and pass events, LevelDetail adds files, LevelDebug keeps everything.
//
// Tracers travel through the driver in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "load")
//	defer span.End("")
//
// Spans started from the returned ctx get the span as their parent.
package trace
