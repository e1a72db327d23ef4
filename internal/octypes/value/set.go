package value

import (
	"fmt"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var setTypeID = registry.MustRegister("OCSet", decodeSetTyped)

// Set is an unordered collection with Equal-based membership uniqueness
// (spec §3.2 row Set). It is always mutable; there is no immutable variant
// in the original and none is needed here.
type Set struct {
	object.Counter
	elems []Value
}

// NewSet returns a new, empty Set.
func NewSet() *Set {
	s := &Set{Counter: object.New(setTypeID)}
	leaktrack.Track(s, setTypeID, "")
	return s
}

// Count returns the number of distinct members.
func (s *Set) Count() int { return len(s.elems) }

// Contains reports whether any member Equals v.
func (s *Set) Contains(v Value) bool {
	for _, e := range s.elems {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Add retains and inserts v unless an Equal member is already present, in
// which case it is a silent no-op (spec §4.4.3: Set membership is keyed on
// Equal, not pointer identity).
func (s *Set) Add(v Value) {
	if s.Contains(v) {
		return
	}
	s.elems = append(s.elems, Retain(v))
}

// Remove releases and removes the first member Equal to v, if any.
func (s *Set) Remove(v Value) {
	for i, e := range s.elems {
		if Equal(e, v) {
			Release(e)
			s.elems = append(s.elems[:i], s.elems[i+1:]...)
			return
		}
	}
}

// Values returns a borrowed snapshot slice of the current members, in
// unspecified (insertion-stable but not semantically meaningful) order.
func (s *Set) Values() []Value {
	out := make([]Value, len(s.elems))
	copy(out, s.elems)
	return out
}

func (s *Set) Retain() Value {
	s.RetainSelf()
	return s
}

func (s *Set) Release() {
	if s.ReleaseSelf() {
		leaktrack.Untrack(s)
		for _, e := range s.elems {
			Release(e)
		}
		s.elems = nil
	}
}

// Equal requires the same cardinality and that every member of one has an
// Equal counterpart in the other.
func (s *Set) Equal(other Value) bool {
	o, ok := other.(*Set)
	if !ok || len(s.elems) != len(o.elems) {
		return false
	}
	for _, e := range s.elems {
		if !o.Contains(e) {
			return false
		}
	}
	return true
}

func (s *Set) Describe() string {
	return fmt.Sprintf("<Set count=%d>", len(s.elems))
}

func (s *Set) DeepCopy() Value {
	cp := NewSet()
	for _, e := range s.elems {
		cp.elems = append(cp.elems, DeepCopy(e))
	}
	return cp
}

// JSON renders a Set as a JSON array of its members (order unspecified);
// typed mode wraps the array with a "type" tag.
func (s *Set) JSON(typed bool) (any, error) {
	elems := make([]any, 0, len(s.elems))
	for _, e := range s.elems {
		j, err := e.JSON(typed)
		if err != nil {
			return nil, err
		}
		elems = append(elems, j)
	}
	if !typed {
		return elems, nil
	}
	return map[string]any{"type": "OCSet", "value": elems}, nil
}

func decodeSetTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCSet expects a JSON object", ErrTypeMismatch)
	}
	rawElems, ok := obj["value"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCSet value must be an array", ErrTypeMismatch)
	}
	if DecodeAnyTyped == nil {
		return nil, ErrJSONNotWired
	}
	s := NewSet()
	for _, raw := range rawElems {
		v, err := DecodeAnyTyped(raw)
		if err != nil {
			for _, e := range s.elems {
				Release(e)
			}
			return nil, err
		}
		s.Add(v)
		Release(v)
	}
	return s, nil
}
