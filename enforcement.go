package collect

import "sync/atomic"

// enforcement decides what an emission matching no live scope does: off
// (the default) it is inert and yields the fallback value, on it is fatal.
// Process-wide, so a host can flip it once during development to catch
// emissions whose enclosing scope is missing.
var enforcement atomic.Bool

// ConfigureEnforcement sets the enforcement flag for all subsequent
// emissions, on every stack.
func ConfigureEnforcement(enabled bool) { enforcement.Store(enabled) }

// EnforcementEnabled reports the current enforcement flag.
func EnforcementEnabled() bool { return enforcement.Load() }
