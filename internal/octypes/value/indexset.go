package value

import (
	"fmt"
	"sort"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var indexSetTypeID = registry.MustRegister("OCIndexSet", decodeIndexSetTyped)

// NotFound is the sentinel returned by index-container queries that find
// nothing, matching the original's kOCNotFound.
const NotFound int64 = -1

// IndexSet is a strictly ascending, duplicate-free vector of integers (spec
// §3.2 row IndexSet).
type IndexSet struct {
	object.Counter
	indexes  []int64
	encoding JSONEncoding
}

// NewIndexSet returns a new IndexSet containing the unique values of in,
// sorted ascending.
func NewIndexSet(in ...int64) *IndexSet {
	s := &IndexSet{Counter: object.New(indexSetTypeID)}
	for _, v := range in {
		s.Add(v)
	}
	leaktrack.Track(s, indexSetTypeID, "")
	return s
}

// Count returns the number of indexes.
func (s *IndexSet) Count() int { return len(s.indexes) }

// First returns the smallest index, or NotFound if empty.
func (s *IndexSet) First() int64 {
	if len(s.indexes) == 0 {
		return NotFound
	}
	return s.indexes[0]
}

// Last returns the largest index, or NotFound if empty.
func (s *IndexSet) Last() int64 {
	if len(s.indexes) == 0 {
		return NotFound
	}
	return s.indexes[len(s.indexes)-1]
}

// Contains reports whether x is a member.
func (s *IndexSet) Contains(x int64) bool {
	i := sort.Search(len(s.indexes), func(i int) bool { return s.indexes[i] >= x })
	return i < len(s.indexes) && s.indexes[i] == x
}

// IndexLessThan returns the greatest member strictly less than x, or
// NotFound.
func (s *IndexSet) IndexLessThan(x int64) int64 {
	i := sort.Search(len(s.indexes), func(i int) bool { return s.indexes[i] >= x })
	if i == 0 {
		return NotFound
	}
	return s.indexes[i-1]
}

// IndexGreaterThan returns the smallest member strictly greater than x, or
// NotFound.
func (s *IndexSet) IndexGreaterThan(x int64) int64 {
	i := sort.Search(len(s.indexes), func(i int) bool { return s.indexes[i] > x })
	if i == len(s.indexes) {
		return NotFound
	}
	return s.indexes[i]
}

// Add inserts x, preserving sort order and uniqueness (a duplicate is a
// silent no-op).
func (s *IndexSet) Add(x int64) {
	i := sort.Search(len(s.indexes), func(i int) bool { return s.indexes[i] >= x })
	if i < len(s.indexes) && s.indexes[i] == x {
		return
	}
	s.indexes = append(s.indexes, 0)
	copy(s.indexes[i+1:], s.indexes[i:])
	s.indexes[i] = x
}

// SetEncoding chooses how s.JSON renders in typed mode.
func (s *IndexSet) SetEncoding(e JSONEncoding) { s.encoding = e }

// Indexes returns a borrowed snapshot of the sorted member slice.
func (s *IndexSet) Indexes() []int64 {
	out := make([]int64, len(s.indexes))
	copy(out, s.indexes)
	return out
}

func (s *IndexSet) Retain() Value {
	s.RetainSelf()
	return s
}

func (s *IndexSet) Release() {
	if s.ReleaseSelf() {
		leaktrack.Untrack(s)
		s.indexes = nil
	}
}

func (s *IndexSet) Equal(other Value) bool {
	o, ok := other.(*IndexSet)
	if !ok || len(s.indexes) != len(o.indexes) {
		return false
	}
	for i := range s.indexes {
		if s.indexes[i] != o.indexes[i] {
			return false
		}
	}
	return true
}

func (s *IndexSet) Describe() string {
	return fmt.Sprintf("<IndexSet count=%d>", len(s.indexes))
}

func (s *IndexSet) DeepCopy() Value {
	cp := NewIndexSet(s.indexes...)
	cp.encoding = s.encoding
	return cp
}

// JSON renders an IndexSet as a plain JSON array of integers (spec §4.3.3).
// Typed mode wraps it with a "type"/"encoding" tag.
func (s *IndexSet) JSON(typed bool) (any, error) {
	if !typed {
		arr := make([]any, len(s.indexes))
		for i, v := range s.indexes {
			arr[i] = v
		}
		return arr, nil
	}
	return map[string]any{"type": "OCIndexSet", "encoding": s.encoding.String(), "value": encodeIndexIntegers(s.indexes, "OCIndexSet", s.encoding)}, nil
}

func decodeIndexSetTyped(node any) (registry.Identifiable, error) {
	vals, enc, err := decodeIndexIntegers(node, "OCIndexSet")
	if err != nil {
		return nil, err
	}
	s := NewIndexSet(vals...)
	s.encoding = enc
	return s, nil
}
