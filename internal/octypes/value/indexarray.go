package value

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var indexArrayTypeID = registry.MustRegister("OCIndexArray", decodeIndexArrayTyped)

// JSONEncoding selects how an index container's typed JSON packs its
// integers (spec §4.3.3).
type JSONEncoding uint8

const (
	// EncodingNone emits a plain JSON integer array.
	EncodingNone JSONEncoding = iota
	// EncodingBase64 packs little-endian int64s and base64-encodes them.
	EncodingBase64
)

func (e JSONEncoding) String() string {
	if e == EncodingBase64 {
		return "base64"
	}
	return "none"
}

func encodeIndexIntegers(vals []int64, typeName string, encoding JSONEncoding) any {
	if encoding == EncodingBase64 {
		raw := make([]byte, len(vals)*8)
		for i, v := range vals {
			binary.LittleEndian.PutUint64(raw[i*8:], uint64(v))
		}
		return base64.StdEncoding.EncodeToString(raw)
	}
	arr := make([]any, len(vals))
	for i, v := range vals {
		arr[i] = v
	}
	return arr
}

// IndexArray is an ordered sequence of integers that may repeat (spec §3.2
// row IndexArray), unlike IndexSet's sorted-unique discipline.
type IndexArray struct {
	object.Counter
	values   []int64
	encoding JSONEncoding
}

// NewIndexArray returns a new IndexArray holding a copy of in, in order.
func NewIndexArray(in ...int64) *IndexArray {
	a := &IndexArray{Counter: object.New(indexArrayTypeID), values: append([]int64(nil), in...)}
	leaktrack.Track(a, indexArrayTypeID, "")
	return a
}

// Count returns the number of elements.
func (a *IndexArray) Count() int { return len(a.values) }

// GetAt returns the value at i.
func (a *IndexArray) GetAt(i int) (int64, error) {
	if i < 0 || i >= len(a.values) {
		return NotFound, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.values))
	}
	return a.values[i], nil
}

// Append adds x to the end.
func (a *IndexArray) Append(x int64) { a.values = append(a.values, x) }

// SetAt replaces the value at i.
func (a *IndexArray) SetAt(i int, x int64) error {
	if i < 0 || i >= len(a.values) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.values))
	}
	a.values[i] = x
	return nil
}

// RemoveAt deletes the element at i, shifting later elements down.
func (a *IndexArray) RemoveAt(i int) error {
	if i < 0 || i >= len(a.values) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	return nil
}

// RemoveAtIndexes deletes every position named by targets. Positions are
// removed from highest to lowest so that earlier removals never shift the
// meaning of a later target index (spec §4.4.4).
func (a *IndexArray) RemoveAtIndexes(targets *IndexSet) error {
	if targets == nil {
		return nil
	}
	sorted := append([]int64(nil), targets.indexes...)
	sort.Sort(sort.Reverse(sortableInt64s(sorted)))
	for _, pos := range sorted {
		if err := a.RemoveAt(int(pos)); err != nil {
			return err
		}
	}
	return nil
}

type sortableInt64s []int64

func (s sortableInt64s) Len() int           { return len(s) }
func (s sortableInt64s) Less(i, j int) bool { return s[i] < s[j] }
func (s sortableInt64s) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SetEncoding chooses how a.JSON renders in typed mode.
func (a *IndexArray) SetEncoding(e JSONEncoding) { a.encoding = e }

// Values returns a borrowed snapshot of the element slice.
func (a *IndexArray) Values() []int64 {
	out := make([]int64, len(a.values))
	copy(out, a.values)
	return out
}

func (a *IndexArray) Retain() Value {
	a.RetainSelf()
	return a
}

func (a *IndexArray) Release() {
	if a.ReleaseSelf() {
		leaktrack.Untrack(a)
		a.values = nil
	}
}

func (a *IndexArray) Equal(other Value) bool {
	o, ok := other.(*IndexArray)
	if !ok || len(a.values) != len(o.values) {
		return false
	}
	for i := range a.values {
		if a.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

func (a *IndexArray) Describe() string {
	return fmt.Sprintf("<IndexArray count=%d>", len(a.values))
}

func (a *IndexArray) DeepCopy() Value {
	cp := NewIndexArray(a.values...)
	cp.encoding = a.encoding
	return cp
}

// JSON renders an IndexArray the same way as IndexSet: a plain JSON integer
// array, wrapped with a "type"/"encoding" tag in typed mode.
func (a *IndexArray) JSON(typed bool) (any, error) {
	if !typed {
		arr := make([]any, len(a.values))
		for i, v := range a.values {
			arr[i] = v
		}
		return arr, nil
	}
	return map[string]any{"type": "OCIndexArray", "encoding": a.encoding.String(), "value": encodeIndexIntegers(a.values, "OCIndexArray", a.encoding)}, nil
}

func decodeIndexArrayTyped(node any) (registry.Identifiable, error) {
	vals, enc, err := decodeIndexIntegers(node, "OCIndexArray")
	if err != nil {
		return nil, err
	}
	a := NewIndexArray(vals...)
	a.encoding = enc
	return a, nil
}

// decodeIndexIntegers decodes the common IndexSet/IndexArray typed-JSON
// shape: { "type", "encoding": "none"|"base64", "value" }. "none" holds a
// plain JSON integer array; "base64" packs little-endian int64s (spec
// §4.3.3's "width is part of the implementation's canonical choice"). The
// source encoding is returned too, so a decode-then-encode round trip
// reproduces the same "encoding" field (spec §8 IndexPairSet scenario).
func decodeIndexIntegers(node any, typeName string) ([]int64, JSONEncoding, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, EncodingNone, fmt.Errorf("%w: %s expects a JSON object", ErrTypeMismatch, typeName)
	}
	encoding, _ := obj["encoding"].(string)
	switch encoding {
	case "", "none":
		arr, ok := obj["value"].([]any)
		if !ok {
			return nil, EncodingNone, fmt.Errorf("%w: %s value must be an array", ErrTypeMismatch, typeName)
		}
		out := make([]int64, len(arr))
		for i, raw := range arr {
			f, err := jsonNumberToFloat64(raw)
			if err != nil {
				return nil, EncodingNone, err
			}
			out[i] = int64(f)
		}
		return out, EncodingNone, nil
	case "base64":
		s, ok := obj["value"].(string)
		if !ok {
			return nil, EncodingBase64, fmt.Errorf("%w: %s base64 value must be a string", ErrTypeMismatch, typeName)
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, EncodingBase64, fmt.Errorf("octypes: decode %s base64: %w", typeName, err)
		}
		if len(raw)%8 != 0 {
			return nil, EncodingBase64, fmt.Errorf("%w: %s base64 payload is not a multiple of 8 bytes", ErrLengthMismatch, typeName)
		}
		out := make([]int64, len(raw)/8)
		for i := range out {
			out[i] = int64(binary.LittleEndian.Uint64(raw[i*8:]))
		}
		return out, EncodingBase64, nil
	default:
		return nil, EncodingNone, fmt.Errorf("%w: unsupported %s encoding %q", ErrTypeMismatch, typeName, encoding)
	}
}
