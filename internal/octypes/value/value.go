// Package value implements the concrete reference-counted, polymorphic
// value objects of the runtime: String, Number, Boolean, Null, Data, Array,
// Dictionary, Set, IndexSet, IndexArray, and IndexPairSet. Every concrete
// type embeds object.Counter and implements the Value interface below,
// which replaces the original per-array callback-pointer table with plain
// Go interface dispatch (spec §9 Design Note 1): a container never needs a
// type switch to retain, release, compare, or describe its elements.
package value

import (
	"errors"

	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

// Value is implemented by every concrete value type in this package.
type Value interface {
	TypeID() registry.TypeID
	IsStatic() bool
	Retain() Value
	Release()
	Equal(other Value) bool
	Describe() string
	DeepCopy() Value
	// JSON renders the receiver to a JSON-able native Go value (the node
	// shapes decoded/encoded by internal/octypes/ocjson), in typed or
	// untyped mode per spec §4.3.
	JSON(typed bool) (any, error)
}

// Sentinel errors surfacing the boundary error kinds from spec §7. Go's
// explicit error return replaces the C out-error-string convention.
var (
	ErrNilArgument     = errors.New("octypes: nil argument")
	ErrIndexOutOfRange = errors.New("octypes: index out of range")
	ErrTypeMismatch    = errors.New("octypes: type mismatch")
	ErrDuplicateIndex  = errors.New("octypes: duplicate index")
	ErrLengthMismatch  = errors.New("octypes: length mismatch")
	ErrUnsupportedKind = errors.New("octypes: unsupported numeric kind")
	ErrKeyNotFound     = errors.New("octypes: key not found")
	ErrKeyExists       = errors.New("octypes: key already exists")
)

// Retain is a nil-safe wrapper matching spec §4.2's retain(nil) == nil.
func Retain(v Value) Value {
	if v == nil {
		return nil
	}
	return v.Retain()
}

// Release is a nil-safe wrapper matching spec §4.2's release(nil) is a no-op.
func Release(v Value) {
	if v == nil {
		return
	}
	v.Release()
}

// DeepCopy is a nil-safe wrapper; static singletons return themselves by
// identity (spec §4.2).
func DeepCopy(v Value) Value {
	if v == nil {
		return nil
	}
	if v.IsStatic() {
		return v
	}
	return v.DeepCopy()
}

// Equal is a nil-safe structural equality check: two nils are equal, a nil
// and non-nil are never equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// DecodeAnyTyped is set once, at program init, by internal/octypes/ocjson to
// its FromTyped dispatcher. Array/Dictionary/Set's typed-JSON factories need
// to reconstruct arbitrary nested elements, but ocjson (which owns that
// general dispatch) in turn needs to import value for the concrete types —
// a dependency-injection hook breaks the cycle the same way net/http and
// encoding/json wire optional behavior into lower layers. Any program that
// reconstructs typed JSON must import ocjson (directly or transitively) so
// this hook is non-nil before first use.
var DecodeAnyTyped func(node any) (Value, error)

// ErrJSONNotWired is returned by a typed-JSON factory that needs
// DecodeAnyTyped before it has been set.
var ErrJSONNotWired = errors.New("octypes: ocjson package not imported; typed JSON dispatch unavailable")
