package trace

import "context"

// scopeState is what a context carries: the tracer and the innermost span.
type scopeState struct {
	tracer Tracer
	parent uint64
}

type stateKey struct{}

func stateOf(ctx context.Context) scopeState {
	if ctx != nil {
		if st, ok := ctx.Value(stateKey{}).(scopeState); ok {
			return st
		}
	}
	return scopeState{tracer: Nop}
}

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateOf(ctx).tracer
}

// WithTracer stores t in ctx and resets the parent span. A nil tracer is
// stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, stateKey{}, scopeState{tracer: t})
}

// WithSpan makes s the parent for spans started from the returned context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	st := stateOf(ctx)
	st.parent = s.ID()
	return context.WithValue(ctx, stateKey{}, st)
}

// ParentID returns the id of the innermost span recorded in ctx, or 0.
func ParentID(ctx context.Context) uint64 {
	return stateOf(ctx).parent
}

// StartSpan begins a span under the span recorded in ctx and returns a
// context in which it is the parent.
func StartSpan(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	st := stateOf(ctx)
	s := Begin(st.tracer, scope, name, st.parent)
	return s, WithSpan(ctx, s)
}
