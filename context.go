package collect

import "context"

type stackKey struct{}

// NewContext returns a copy of ctx carrying s. Every logical execution gets
// its own Stack; two contexts built from different stacks never observe each
// other's scopes.
func NewContext(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// StackFrom returns the Stack carried by ctx, if any.
func StackFrom(ctx context.Context) (*Stack, bool) {
	s, ok := ctx.Value(stackKey{}).(*Stack)
	return s, ok
}

// Run executes body inside a new default-tagged collection scope and returns
// the values collected into it. See RunTagged.
func Run(ctx context.Context, body func(context.Context)) []any {
	return RunTagged(ctx, DefaultTag, body)
}

// RunTagged executes body inside a new collection scope tagged tag, on the
// Stack carried by ctx. A context without a stack gets a fresh one, so a
// top-level scope establishes its own isolated execution context. The
// context passed to body carries the stack and must be the one handed to
// nested RunTagged and Emit calls.
func RunTagged(ctx context.Context, tag any, body func(context.Context)) []any {
	s, ok := StackFrom(ctx)
	if !ok {
		s = NewStack()
		ctx = NewContext(ctx, s)
	}
	return s.Run(tag, func() { body(ctx) })
}

// Emit collects v into the innermost scope on ctx's stack matching the
// emission's tag. A context without a stack counts as having no matching
// scope. See (*Stack).Emit for the matched, unmatched, and abort behavior.
func Emit(ctx context.Context, v any, opts ...EmitOption) any {
	if s, ok := StackFrom(ctx); ok {
		return s.Emit(v, opts...)
	}
	return unmatched(newEmission(opts))
}
