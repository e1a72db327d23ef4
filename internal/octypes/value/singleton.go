package value

import (
	"fmt"

	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var booleanTypeID = registry.MustRegister("OCBoolean", decodeBooleanTyped)
var nullTypeID = registry.MustRegister("OCNull", decodeNullTyped)

// Boolean is one of the two process-wide singletons True/False. It is never
// allocated by users; retain_count stays 0 forever (spec §3.2 row Boolean).
type Boolean struct {
	object.Counter
	v bool
}

var (
	// True is the sole true Boolean instance.
	True = &Boolean{Counter: object.NewStatic(booleanTypeID), v: true}
	// False is the sole false Boolean instance.
	False = &Boolean{Counter: object.NewStatic(booleanTypeID), v: false}
)

// BooleanFor returns True or False for the given Go bool, by identity.
func BooleanFor(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// BoolValue returns the underlying Go bool.
func (b *Boolean) BoolValue() bool { return b.v }

func (b *Boolean) Retain() Value { return b } // static: RetainSelf is a no-op
func (b *Boolean) Release()      {}            // static: never released

// Equal compares by identity, per spec §3.3 ("Singletons ... equal <=> identity").
func (b *Boolean) Equal(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && o == b
}

func (b *Boolean) Describe() string {
	if b.v {
		return "true"
	}
	return "false"
}

// DeepCopy of a static singleton returns the same pointer (spec §3.1/§4.2).
func (b *Boolean) DeepCopy() Value { return b }

func (b *Boolean) JSON(typed bool) (any, error) { return b.v, nil }

func decodeBooleanTyped(node any) (registry.Identifiable, error) {
	b, ok := node.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: OCBoolean expects a JSON boolean, got %T", ErrTypeMismatch, node)
	}
	return BooleanFor(b), nil
}

// Null is the sole null singleton.
type Null struct {
	object.Counter
}

// NullValue is the sole Null instance (kNull).
var NullValue = &Null{Counter: object.NewStatic(nullTypeID)}

func (n *Null) Retain() Value { return n }
func (n *Null) Release()      {}

func (n *Null) Equal(other Value) bool {
	o, ok := other.(*Null)
	return ok && o == n
}

func (n *Null) Describe() string { return "null" }

func (n *Null) DeepCopy() Value { return n }

func (n *Null) JSON(typed bool) (any, error) { return nil, nil }

func decodeNullTyped(node any) (registry.Identifiable, error) {
	if node != nil {
		return nil, fmt.Errorf("%w: OCNull expects JSON null, got %T", ErrTypeMismatch, node)
	}
	return NullValue, nil
}
