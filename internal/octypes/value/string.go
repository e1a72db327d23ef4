package value

import (
	"fmt"
	"sync"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var stringTypeID = registry.MustRegister("OCString", decodeStringTyped)

// decodeStringTyped is the registered OCString factory. OCString never
// carries a "type" tag (spec §4.3.2: its value is unambiguous without one),
// and ocjson turns a bare JSON string into a String by shape without calling
// this factory. It accepts only a bare JSON string node; a tagged object
// routed to it through the registry returns ErrTypeMismatch.
func decodeStringTyped(node any) (registry.Identifiable, error) {
	s, ok := node.(string)
	if !ok {
		return nil, fmt.Errorf("%w: OCString expects a JSON string, got %T", ErrTypeMismatch, node)
	}
	return NewString(s), nil
}

// String is an immutable or mutable UTF-8 byte sequence.
type String struct {
	object.Counter
	buf       []byte
	immutable bool
}

// NewString returns a new immutable String with retain count 1, owning a
// private copy of s's bytes.
func NewString(s string) *String {
	str := &String{Counter: object.New(stringTypeID), buf: []byte(s), immutable: true}
	leaktrack.Track(str, stringTypeID, "")
	return str
}

// NewMutableString returns a new, empty, mutable String with the given
// initial capacity hint.
func NewMutableString(capacity int) *String {
	if capacity < 0 {
		capacity = 0
	}
	str := &String{Counter: object.New(stringTypeID), buf: make([]byte, 0, capacity)}
	leaktrack.Track(str, stringTypeID, "")
	return str
}

var internTable sync.Map // string -> *String

// Intern returns the process-wide canonical static String for s, creating it
// on first reference. Concurrent first use of the same constant yields a
// single canonical instance via sync.Map's atomic LoadOrStore (spec §5's
// "implementation's choice of synchronization; a one-time initializer is
// sufficient").
func Intern(s string) *String {
	if v, ok := internTable.Load(s); ok {
		return v.(*String)
	}
	str := &String{Counter: object.NewStatic(stringTypeID), buf: []byte(s), immutable: true}
	actual, _ := internTable.LoadOrStore(s, str)
	return actual.(*String)
}

// String returns the Go string value (a copy of the underlying bytes).
func (s *String) String() string { return string(s.buf) }

// Length returns the number of bytes (not runes) in the string.
func (s *String) Length() int { return len(s.buf) }

// IsMutable reports whether Append/SetString are permitted.
func (s *String) IsMutable() bool { return !s.immutable }

// Append appends more to a mutable string. A no-op error on an immutable one.
func (s *String) Append(more string) error {
	if s.immutable {
		return fmt.Errorf("octypes: cannot append to an immutable String")
	}
	s.buf = append(s.buf, more...)
	return nil
}

// SetString replaces the contents of a mutable string.
func (s *String) SetString(v string) error {
	if s.immutable {
		return fmt.Errorf("octypes: cannot mutate an immutable String")
	}
	s.buf = append(s.buf[:0], v...)
	return nil
}

func (s *String) Retain() Value {
	s.RetainSelf()
	return s
}

func (s *String) Release() {
	if s.ReleaseSelf() {
		leaktrack.Untrack(s)
		s.buf = nil
	}
}

func (s *String) Equal(other Value) bool {
	o, ok := other.(*String)
	if !ok {
		return false
	}
	return string(s.buf) == string(o.buf)
}

func (s *String) Describe() string { return string(s.buf) }

func (s *String) DeepCopy() Value {
	if s.IsStatic() {
		return s
	}
	if s.immutable {
		return NewString(string(s.buf))
	}
	cp := NewMutableString(len(s.buf))
	cp.buf = append(cp.buf, s.buf...)
	return cp
}

// JSON renders the string as a native JSON string in both typed and untyped
// mode (spec §4.3.2: String/Boolean/Null are unambiguous without a tag).
func (s *String) JSON(typed bool) (any, error) {
	return string(s.buf), nil
}
