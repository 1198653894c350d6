// Package collect provides dynamically scoped value collection: a caller
// opens a named collection scope, any code running within that scope's
// dynamic extent emits values into it without threading an accumulator
// through intervening calls, and the scope yields the collected values in
// emission order when it ends. Scopes nest; a tag routes an emission to a
// specific ancestor scope; an emission may also abort its target scope,
// skipping the rest of its body while keeping the values collected so far.
package collect

type defaultTag struct{}

func (defaultTag) String() string { return "<default>" }

// DefaultTag is the tag used when a scope or an emission does not name one.
// It is distinct from any value a caller could construct.
var DefaultTag = defaultTag{}

// Frame is one live collection scope. The *Frame pointer is the scope's
// handle: End and the abort unwind identify the scope by pointer, while
// emissions reach it by tag.
type Frame struct {
	tag     any
	values  []any
	aborted bool
}

// Tag returns the tag the frame was opened with.
func (f *Frame) Tag() any { return f.tag }

// Aborted reports whether the frame was torn down early by an aborting
// emission rather than by its body running to completion.
func (f *Frame) Aborted() bool { return f.aborted }

// Stack holds the live collection scopes of one logical execution,
// innermost last. A Stack is not safe for concurrent use; give each
// concurrent execution its own (see NewContext and Run).
type Stack struct {
	frames []*Frame
}

// NewStack returns an empty scope stack.
func NewStack() *Stack {
	return &Stack{}
}

// Begin opens a collection scope tagged tag and returns its handle.
// A nil tag means DefaultTag.
func (s *Stack) Begin(tag any) *Frame {
	if tag == nil {
		tag = DefaultTag
	}
	f := &Frame{tag: tag}
	s.frames = append(s.frames, f)
	return f
}

// End closes the scope identified by f and returns its collected values in
// emission order. f must be the innermost live scope; ending scopes out of
// creation order is a bug in the caller and panics with *ScopeOrderError.
func (s *Stack) End(f *Frame) []any {
	if len(s.frames) == 0 || s.frames[len(s.frames)-1] != f {
		panic(NewScopeOrderError(f.tag, len(s.frames)))
	}
	s.frames = s.frames[:len(s.frames)-1]
	return f.values
}

// Find returns the innermost live frame whose tag equals tag, so an inner
// scope shadows an outer scope with the same tag while a distinct tag still
// reaches past it. A nil tag means DefaultTag. Tags compare by value
// equality, never by conversion.
func (s *Stack) Find(tag any) (*Frame, bool) {
	if tag == nil {
		tag = DefaultTag
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].tag == tag {
			return s.frames[i], true
		}
	}
	return nil, false
}

// Depth returns the number of live scopes.
func (s *Stack) Depth() int { return len(s.frames) }
