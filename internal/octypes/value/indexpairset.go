package value

import (
	"fmt"
	"sort"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var indexPairSetTypeID = registry.MustRegister("OCIndexPairSet", decodeIndexPairSetTyped)

// IndexPair is one (index, value) entry of an IndexPairSet.
type IndexPair struct {
	Index int64
	Value int64
}

// IndexPairSet is a vector of (index,value) pairs, sorted ascending and
// unique on index (spec §3.2 row IndexPairSet).
type IndexPairSet struct {
	object.Counter
	pairs    []IndexPair
	encoding JSONEncoding
}

// NewIndexPairSet returns a new IndexPairSet built from in. Pairs are added
// in order via AddPair; a later pair whose index duplicates an earlier one
// is dropped (see AddPair).
func NewIndexPairSet(in ...IndexPair) *IndexPairSet {
	s := &IndexPairSet{Counter: object.New(indexPairSetTypeID)}
	for _, p := range in {
		s.AddPair(p.Index, p.Value)
	}
	leaktrack.Track(s, indexPairSetTypeID, "")
	return s
}

// Count returns the number of pairs.
func (s *IndexPairSet) Count() int { return len(s.pairs) }

func (s *IndexPairSet) search(index int64) int {
	return sort.Search(len(s.pairs), func(i int) bool { return s.pairs[i].Index >= index })
}

// ValueForIndex returns the value stored under index, or NotFound if absent.
func (s *IndexPairSet) ValueForIndex(index int64) int64 {
	i := s.search(index)
	if i < len(s.pairs) && s.pairs[i].Index == index {
		return s.pairs[i].Value
	}
	return NotFound
}

// AddPair inserts (index, value), preserving ascending order on Index.
// Fails (returns false) if index is already present; no overwrite (spec
// §4.4.5).
func (s *IndexPairSet) AddPair(index, value int64) bool {
	i := s.search(index)
	if i < len(s.pairs) && s.pairs[i].Index == index {
		return false
	}
	s.pairs = append(s.pairs, IndexPair{})
	copy(s.pairs[i+1:], s.pairs[i:])
	s.pairs[i] = IndexPair{Index: index, Value: value}
	return true
}

// RemoveIndex deletes the pair for index, if present.
func (s *IndexPairSet) RemoveIndex(index int64) {
	i := s.search(index)
	if i < len(s.pairs) && s.pairs[i].Index == index {
		s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
	}
}

// First returns the pair with the smallest index, or {NotFound, NotFound}.
func (s *IndexPairSet) First() IndexPair {
	if len(s.pairs) == 0 {
		return IndexPair{NotFound, NotFound}
	}
	return s.pairs[0]
}

// Last returns the pair with the largest index, or {NotFound, NotFound}.
func (s *IndexPairSet) Last() IndexPair {
	if len(s.pairs) == 0 {
		return IndexPair{NotFound, NotFound}
	}
	return s.pairs[len(s.pairs)-1]
}

// SetEncoding chooses how s.JSON renders in typed mode.
func (s *IndexPairSet) SetEncoding(e JSONEncoding) { s.encoding = e }

// Pairs returns a borrowed snapshot of the sorted pair slice.
func (s *IndexPairSet) Pairs() []IndexPair {
	out := make([]IndexPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

func (s *IndexPairSet) Retain() Value {
	s.RetainSelf()
	return s
}

func (s *IndexPairSet) Release() {
	if s.ReleaseSelf() {
		leaktrack.Untrack(s)
		s.pairs = nil
	}
}

func (s *IndexPairSet) Equal(other Value) bool {
	o, ok := other.(*IndexPairSet)
	if !ok || len(s.pairs) != len(o.pairs) {
		return false
	}
	for i := range s.pairs {
		if s.pairs[i] != o.pairs[i] {
			return false
		}
	}
	return true
}

func (s *IndexPairSet) Describe() string {
	return fmt.Sprintf("<IndexPairSet count=%d>", len(s.pairs))
}

func (s *IndexPairSet) DeepCopy() Value {
	cp := NewIndexPairSet(s.pairs...)
	cp.encoding = s.encoding
	return cp
}

// JSON renders an IndexPairSet as a flat [i0,v0,i1,v1,...] JSON array (spec
// §4.3.3), wrapped with a "type"/"encoding" tag in typed mode.
func (s *IndexPairSet) JSON(typed bool) (any, error) {
	flat := make([]int64, 0, len(s.pairs)*2)
	for _, p := range s.pairs {
		flat = append(flat, p.Index, p.Value)
	}
	if !typed {
		out := make([]any, len(flat))
		for i, v := range flat {
			out[i] = v
		}
		return out, nil
	}
	return map[string]any{"type": "OCIndexPairSet", "encoding": s.encoding.String(), "value": encodeIndexIntegers(flat, "OCIndexPairSet", s.encoding)}, nil
}

func decodeIndexPairSetTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCIndexPairSet expects a JSON object", ErrTypeMismatch)
	}
	flat, enc, err := decodeIndexIntegers(obj, "OCIndexPairSet")
	if err != nil {
		return nil, err
	}
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: OCIndexPairSet flat value must have an even length", ErrLengthMismatch)
	}
	s := NewIndexPairSet()
	s.encoding = enc
	for i := 0; i < len(flat); i += 2 {
		s.AddPair(flat[i], flat[i+1])
	}
	return s, nil
}
