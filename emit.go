package collect

type emission struct {
	tag      any
	abort    bool
	fallback any
}

func newEmission(opts []EmitOption) emission {
	em := emission{tag: DefaultTag}
	for _, o := range opts {
		o(&em)
	}
	return em
}

// EmitOption adjusts a single emission.
type EmitOption func(*emission)

// To routes the emission to the innermost scope whose tag equals tag instead
// of the innermost default-tagged scope.
func To(tag any) EmitOption {
	return func(e *emission) { e.tag = tag }
}

// Abort makes the emission terminate its target scope: the value is still
// collected, then control transfers straight to the scope's boundary without
// running any further statement between the emission point and that boundary.
func Abort() EmitOption {
	return func(e *emission) { e.abort = true }
}

// Fallback sets the value Emit returns when no live scope matches the tag
// and enforcement is off. Without it such an emission returns nil.
func Fallback(v any) EmitOption {
	return func(e *emission) { e.fallback = v }
}

// abortSignal unwinds an aborting emission to its target frame. Run catches
// it by comparing frame pointers, never by type alone.
type abortSignal struct {
	frame *Frame
}

// Emit appends v to the buffer of the innermost scope matching the emission's
// tag and returns v. With Abort the matched scope is torn down immediately
// afterwards; the unwind is caught by the Run call that opened the matched
// frame. When no scope matches, Emit is inert and returns the Fallback value,
// unless enforcement is on, in which case it panics with *UnmatchedTagError.
func (s *Stack) Emit(v any, opts ...EmitOption) any {
	em := newEmission(opts)
	f, ok := s.Find(em.tag)
	if !ok {
		return unmatched(em)
	}
	f.values = append(f.values, v)
	if em.abort {
		f.aborted = true
		panic(abortSignal{frame: f})
	}
	return v
}

func unmatched(em emission) any {
	if EnforcementEnabled() {
		panic(NewUnmatchedTagError(em.tag))
	}
	return em.fallback
}

// Run executes body inside a new scope tagged tag and returns the values
// collected into it, in emission order. The scope is closed exactly once:
// when body returns, when an emission aborts this scope, or while an unwind
// headed for an outer scope (or any unrelated panic) passes through, in
// which case the values collected here are discarded and the unwind
// continues.
func (s *Stack) Run(tag any, body func()) (out []any) {
	f := s.Begin(tag)
	defer func() {
		r := recover()
		vals := s.End(f)
		if r == nil {
			out = vals
			return
		}
		if sig, ok := r.(abortSignal); ok && sig.frame == f {
			out = vals
			return
		}
		panic(r)
	}()
	body()
	return
}
