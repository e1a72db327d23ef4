// Package object implements the embedded lifecycle header every concrete
// value type in internal/octypes/value carries: a type id, a retain count,
// and the static/finalized/tracked flags from spec §3.1.
//
// Go has no manual free(); Counter ports the C header's refcount discipline
// as the bookkeeping half of retain/release (see spec §9 Design Note 2): a
// zero retain count means "static, never touch again" rather than "about to
// be freed", and ReleaseSelf reports whether the caller's finalize step
// should run. Finalize itself is the concrete type's job (cascading Release
// to owned children); nothing here ever deallocates memory directly, that is
// the Go garbage collector's job once the last reference is dropped.
package object

import "github.com/vaibhaw-/octypes-go/internal/octypes/registry"

// Counter is embedded as the first field of every concrete value type.
type Counter struct {
	typeID    registry.TypeID
	retain    int32
	static    bool
	finalized bool
	tracked   bool
}

// New returns a Counter for a freshly allocated, non-static object with
// retain count 1.
func New(typeID registry.TypeID) Counter {
	return Counter{typeID: typeID, retain: 1}
}

// NewStatic returns a Counter for a process-wide singleton: retain count 0,
// static flag set, never tracked by the leak tracker.
func NewStatic(typeID registry.TypeID) Counter {
	return Counter{typeID: typeID, retain: 0, static: true}
}

// TypeID returns the registry id of the concrete type.
func (c *Counter) TypeID() registry.TypeID { return c.typeID }

// IsStatic reports whether this object is a permanent singleton.
func (c *Counter) IsStatic() bool { return c.static }

// RetainCount returns the current retain count (0 for static objects).
func (c *Counter) RetainCount() int32 { return c.retain }

// IsFinalized reports whether Finalize has already run on this object; no
// further header callback may be invoked afterward (spec §3.1 invariant).
func (c *Counter) IsFinalized() bool { return c.finalized }

// MarkTracked records that the leak tracker has an entry for this object.
// ReleaseSelf clears the flag when it signals finalize; the flag does not
// change what ReleaseSelf returns.
func (c *Counter) MarkTracked() { c.tracked = true }

// IsTracked reports whether the leak tracker currently has an entry for this
// object.
func (c *Counter) IsTracked() bool { return c.tracked }

// RetainSelf bumps the retain count. It is a no-op for static objects, per
// spec §4.2: "retains on a 0-count object are no-ops".
func (c *Counter) RetainSelf() {
	if c.static || c.retain == 0 {
		return
	}
	c.retain++
}

// ReleaseSelf decrements the retain count and reports whether the caller
// should now run its type-specific finalize step (cascading Release to
// owned children) and untrack from the leak tracker. Static objects never
// finalize.
func (c *Counter) ReleaseSelf() (shouldFinalize bool) {
	if c.static || c.retain == 0 {
		return false
	}
	if c.retain == 1 {
		c.retain = 0
		c.finalized = true
		c.tracked = false
		return true
	}
	c.retain--
	return false
}
