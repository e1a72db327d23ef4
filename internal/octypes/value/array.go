package value

import (
	"fmt"
	"sort"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var arrayTypeID = registry.MustRegister("OCArray", decodeArrayTyped)

// Array is an ordered, possibly-heterogeneous, reference-counted collection
// (spec §3.2 row Array). Elements are retained on insertion and released on
// removal or finalize; a container never type-switches its elements because
// every Value already knows how to retain/release/compare/describe itself
// (spec §9 Design Note 1).
type Array struct {
	object.Counter
	elems     []Value
	immutable bool
}

// NewArray returns a new immutable Array retaining each of elems.
func NewArray(elems ...Value) *Array {
	a := &Array{Counter: object.New(arrayTypeID), elems: make([]Value, 0, len(elems)), immutable: true}
	for _, e := range elems {
		a.elems = append(a.elems, Retain(e))
	}
	leaktrack.Track(a, arrayTypeID, "")
	return a
}

// NewMutableArray returns a new, empty, mutable Array with the given initial
// capacity hint. Growth from empty follows the 0->1 bootstrap of spec
// §4.4.1: the first Append allocates a single-element backing slice rather
// than doubling zero.
func NewMutableArray(capacity int) *Array {
	if capacity < 0 {
		capacity = 0
	}
	a := &Array{Counter: object.New(arrayTypeID), elems: make([]Value, 0, capacity)}
	leaktrack.Track(a, arrayTypeID, "")
	return a
}

// Count returns the number of elements.
func (a *Array) Count() int { return len(a.elems) }

// IsMutable reports whether Append/InsertAt/RemoveAt/SetAt are permitted.
func (a *Array) IsMutable() bool { return !a.immutable }

// GetAt returns the element at index i, borrowed (not retained for the
// caller).
func (a *Array) GetAt(i int) (Value, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	return a.elems[i], nil
}

// Append retains v and adds it to the end. Capacity grows by doubling once
// non-empty, matching the amortized-growth shape of the original C array
// (spec §4.4.1); the first element bootstraps capacity from 0 to 1.
func (a *Array) Append(v Value) error {
	if !a.IsMutable() {
		return fmt.Errorf("octypes: cannot append to an immutable Array")
	}
	if cap(a.elems) == len(a.elems) {
		newCap := 1
		if c := cap(a.elems); c > 0 {
			newCap = c * 2
		}
		grown := make([]Value, len(a.elems), newCap)
		copy(grown, a.elems)
		a.elems = grown
	}
	a.elems = append(a.elems, Retain(v))
	return nil
}

// InsertAt inserts v (retained) at index i, shifting subsequent elements up.
func (a *Array) InsertAt(i int, v Value) error {
	if !a.IsMutable() {
		return fmt.Errorf("octypes: cannot insert into an immutable Array")
	}
	if i < 0 || i > len(a.elems) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	a.elems = append(a.elems, nil)
	copy(a.elems[i+1:], a.elems[i:])
	a.elems[i] = Retain(v)
	return nil
}

// RemoveAt releases and removes the element at index i.
func (a *Array) RemoveAt(i int) error {
	if !a.IsMutable() {
		return fmt.Errorf("octypes: cannot remove from an immutable Array")
	}
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	Release(a.elems[i])
	copy(a.elems[i:], a.elems[i+1:])
	a.elems[len(a.elems)-1] = nil
	a.elems = a.elems[:len(a.elems)-1]
	return nil
}

// SetAt releases the element currently at index i and replaces it with a
// retained v.
func (a *Array) SetAt(i int, v Value) error {
	if !a.IsMutable() {
		return fmt.Errorf("octypes: cannot mutate an immutable Array")
	}
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	old := a.elems[i]
	a.elems[i] = Retain(v)
	Release(old)
	return nil
}

// Contains reports whether any element Equals v.
func (a *Array) Contains(v Value) bool {
	return a.FirstIndexOf(v) >= 0
}

// FirstIndexOf returns the index of the first element Equal to v, or -1.
func (a *Array) FirstIndexOf(v Value) int {
	for i, e := range a.elems {
		if Equal(e, v) {
			return i
		}
	}
	return -1
}

// IsHomogeneous reports whether the array is non-empty and every element
// shares the same concrete TypeID (spec §8: "empty arrays are not
// homogeneous; single-element arrays are homogeneous").
func (a *Array) IsHomogeneous() bool {
	if len(a.elems) == 0 {
		return false
	}
	first := a.elems[0].TypeID()
	for _, e := range a.elems[1:] {
		if e.TypeID() != first {
			return false
		}
	}
	return true
}

// HomogeneousNumericKind reports whether every element is a *Number of the
// same NumericType, and which kind. This is the condition under which the
// JSON layer flattens the array to a bare numeric (or [re,im]-pair) slice
// instead of a slice of tagged elements (spec §4.3/§4.5).
func (a *Array) HomogeneousNumericKind() (NumericType, bool) {
	if len(a.elems) == 0 {
		return 0, false
	}
	first, ok := a.elems[0].(*Number)
	if !ok {
		return 0, false
	}
	kind := first.Kind()
	for _, e := range a.elems[1:] {
		n, ok := e.(*Number)
		if !ok || n.Kind() != kind {
			return 0, false
		}
	}
	return kind, true
}

// Sort reorders elements in place using less as the comparator.
func (a *Array) Sort(less func(x, y Value) bool) {
	sort.SliceStable(a.elems, func(i, j int) bool { return less(a.elems[i], a.elems[j]) })
}

// BinarySearch finds the index of an element Equal to target in an array
// already sorted by less, or (-1, false).
func (a *Array) BinarySearch(target Value, less func(x, y Value) bool) (int, bool) {
	i := sort.Search(len(a.elems), func(i int) bool { return !less(a.elems[i], target) })
	if i < len(a.elems) && Equal(a.elems[i], target) {
		return i, true
	}
	return -1, false
}

func (a *Array) Retain() Value {
	a.RetainSelf()
	return a
}

func (a *Array) Release() {
	if a.ReleaseSelf() {
		leaktrack.Untrack(a)
		for _, e := range a.elems {
			Release(e)
		}
		a.elems = nil
	}
}

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(a.elems) != len(o.elems) {
		return false
	}
	for i := range a.elems {
		if !Equal(a.elems[i], o.elems[i]) {
			return false
		}
	}
	return true
}

func (a *Array) Describe() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = e.Describe()
	}
	return fmt.Sprintf("%v", parts)
}

func (a *Array) DeepCopy() Value {
	cp := NewMutableArray(len(a.elems))
	cp.immutable = a.immutable
	for _, e := range a.elems {
		cp.elems = append(cp.elems, DeepCopy(e))
	}
	return cp
}

// JSON implements spec §4.3/§4.5: a homogeneous array of real Number flattens
// to a bare numeric slice, a homogeneous array of complex Number flattens to
// a [re,im,re,im,...] slice, and anything else renders element by element.
// In typed mode the result is always wrapped with a "type" (and, for the
// numeric optimization, "element_type") tag.
func (a *Array) JSON(typed bool) (any, error) {
	if kind, ok := a.HomogeneousNumericKind(); ok {
		flat, err := a.flattenNumeric(kind)
		if err != nil {
			return nil, err
		}
		if !typed {
			return flat, nil
		}
		return map[string]any{"type": "OCArray", "element_type": kind.String(), "value": flat}, nil
	}
	elems := make([]any, 0, len(a.elems))
	for _, e := range a.elems {
		j, err := e.JSON(typed)
		if err != nil {
			return nil, err
		}
		elems = append(elems, j)
	}
	if !typed {
		return elems, nil
	}
	return map[string]any{"type": "OCArray", "value": elems}, nil
}

func (a *Array) flattenNumeric(kind NumericType) ([]any, error) {
	flat := make([]any, 0, len(a.elems)*2)
	for _, e := range a.elems {
		n := e.(*Number)
		if kind.isComplex() {
			flat = append(flat, n.real, n.imag)
		} else {
			flat = append(flat, n.nativeValue())
		}
	}
	return flat, nil
}

// decodeArrayTyped reconstructs an Array from its typed-JSON node. The
// numeric-optimized shape ("element_type" present) is self-contained and
// decodes without help; the general shape holds arbitrary typed elements and
// needs DecodeAnyTyped (wired by internal/octypes/ocjson) to recurse.
func decodeArrayTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCArray expects a JSON object", ErrTypeMismatch)
	}
	if elemType, ok := obj["element_type"].(string); ok {
		kind, ok := NumericTypeByName(elemType)
		if !ok {
			return nil, fmt.Errorf("%w: unknown OCArray element_type %q", ErrUnsupportedKind, elemType)
		}
		flat, ok := obj["value"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: OCArray value must be an array", ErrTypeMismatch)
		}
		arr := NewMutableArray(len(flat))
		if kind.isComplex() {
			if len(flat)%2 != 0 {
				return nil, fmt.Errorf("%w: complex OCArray value must have an even length", ErrLengthMismatch)
			}
			for i := 0; i < len(flat); i += 2 {
				re, err := jsonNumberToFloat64(flat[i])
				if err != nil {
					return nil, err
				}
				im, err := jsonNumberToFloat64(flat[i+1])
				if err != nil {
					return nil, err
				}
				var n *Number
				if kind == KindComplex64 {
					n = NewComplex64(complex(float32(re), float32(im)))
				} else {
					n = NewComplex128(complex(re, im))
				}
				_ = arr.Append(n)
				Release(n)
			}
			return arr, nil
		}
		for _, raw := range flat {
			n, err := numberFromJSONScalar(kind, raw)
			if err != nil {
				return nil, err
			}
			_ = arr.Append(n)
			Release(n)
		}
		return arr, nil
	}

	rawElems, ok := obj["value"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCArray value must be an array", ErrTypeMismatch)
	}
	if DecodeAnyTyped == nil {
		return nil, ErrJSONNotWired
	}
	arr := NewMutableArray(len(rawElems))
	for _, raw := range rawElems {
		v, err := DecodeAnyTyped(raw)
		if err != nil {
			for _, e := range arr.elems {
				Release(e)
			}
			return nil, err
		}
		_ = arr.Append(v)
		Release(v)
	}
	return arr, nil
}
