package collect

import "fmt"

// UnmatchedTagError reports an emission whose tag matched no live scope
// while enforcement was enabled. It signals a missing enclosing scope, not
// bad emitted data, and is delivered by panic.
type UnmatchedTagError struct {
	Tag any // the tag no live scope carried
}

// Error implements the error interface.
func (e *UnmatchedTagError) Error() string {
	return fmt.Sprintf("no active collection scope matches tag %v", e.Tag)
}

// ScopeOrderError reports a scope ended while it was not the innermost live
// scope. Scopes must be torn down in reverse order of creation; ending them
// out of order is a bug in the caller and is delivered by panic.
type ScopeOrderError struct {
	Tag   any // tag of the frame End was called with
	Depth int // live scopes at the time of the call
}

// Error implements the error interface.
func (e *ScopeOrderError) Error() string {
	return fmt.Sprintf("scope tagged %v ended out of order (stack depth %d)", e.Tag, e.Depth)
}

// NewUnmatchedTagError creates a new UnmatchedTagError.
func NewUnmatchedTagError(tag any) *UnmatchedTagError {
	return &UnmatchedTagError{Tag: tag}
}

// NewScopeOrderError creates a new ScopeOrderError.
func NewScopeOrderError(tag any, depth int) *ScopeOrderError {
	return &ScopeOrderError{Tag: tag, Depth: depth}
}
