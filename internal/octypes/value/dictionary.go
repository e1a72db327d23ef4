package value

import (
	"fmt"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var dictionaryTypeID = registry.MustRegister("OCDictionary", decodeDictionaryTyped)

// Dictionary is an ordered string-keyed map (spec §3.2 row Dictionary). Keys
// are plain Go strings, which are immutable values, so a stored key can't
// alias caller state; values are retained. Insertion
// order is preserved in keys/values iteration, matching the original's
// array-of-pairs backing rather than an unordered Go map.
type Dictionary struct {
	object.Counter
	keys      []string
	values    []Value
	immutable bool
}

// NewDictionary returns a new, empty, immutable Dictionary. Use
// NewMutableDictionary to build one up with Set/Add before treating it as
// read-only.
func NewDictionary() *Dictionary {
	d := &Dictionary{Counter: object.New(dictionaryTypeID), immutable: true}
	leaktrack.Track(d, dictionaryTypeID, "")
	return d
}

// NewMutableDictionary returns a new, empty, mutable Dictionary.
func NewMutableDictionary() *Dictionary {
	d := &Dictionary{Counter: object.New(dictionaryTypeID)}
	leaktrack.Track(d, dictionaryTypeID, "")
	return d
}

// Count returns the number of key/value pairs.
func (d *Dictionary) Count() int { return len(d.keys) }

// IsMutable reports whether Add/Replace/Remove are permitted. Set does not
// consult it and also writes to an immutable Dictionary.
func (d *Dictionary) IsMutable() bool { return !d.immutable }

// IndexOfKey returns the position of key, or -1 if absent.
func (d *Dictionary) IndexOfKey(key string) int {
	for i, k := range d.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// ContainsKey reports whether key is present.
func (d *Dictionary) ContainsKey(key string) bool { return d.IndexOfKey(key) >= 0 }

// Get returns the value for key, borrowed, and whether it was present.
func (d *Dictionary) Get(key string) (Value, bool) {
	i := d.IndexOfKey(key)
	if i < 0 {
		return nil, false
	}
	return d.values[i], true
}

// Add inserts key/value only if key is absent (spec §4.4.2's "add" half of
// the normalized add-or-replace rule); returns ErrKeyExists otherwise.
func (d *Dictionary) Add(key string, v Value) error {
	if !d.IsMutable() {
		return fmt.Errorf("octypes: cannot mutate an immutable Dictionary")
	}
	if d.ContainsKey(key) {
		return fmt.Errorf("%w: %q", ErrKeyExists, key)
	}
	d.keys = append(d.keys, key)
	d.values = append(d.values, Retain(v))
	return nil
}

// Set inserts key/value, replacing (releasing the old value of) any existing
// entry for key. This is OCDictionaryAddValue's add-or-replace behavior
// (spec §4.4.2): Set is the normalized single entry point, Add and Replace
// are its two disambiguated halves.
func (d *Dictionary) Set(key string, v Value) {
	if i := d.IndexOfKey(key); i >= 0 {
		old := d.values[i]
		d.values[i] = Retain(v)
		Release(old)
		return
	}
	d.keys = append(d.keys, key)
	d.values = append(d.values, Retain(v))
}

// Replace updates the value for an existing key only; returns
// ErrKeyNotFound if key is absent.
func (d *Dictionary) Replace(key string, v Value) error {
	if !d.IsMutable() {
		return fmt.Errorf("octypes: cannot mutate an immutable Dictionary")
	}
	i := d.IndexOfKey(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	old := d.values[i]
	d.values[i] = Retain(v)
	Release(old)
	return nil
}

// Remove deletes key if present, releasing its value; a no-op if absent.
func (d *Dictionary) Remove(key string) error {
	if !d.IsMutable() {
		return fmt.Errorf("octypes: cannot mutate an immutable Dictionary")
	}
	i := d.IndexOfKey(key)
	if i < 0 {
		return nil
	}
	Release(d.values[i])
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.values = append(d.values[:i], d.values[i+1:]...)
	return nil
}

// CountOfValue returns how many entries hold a value Equal to v.
func (d *Dictionary) CountOfValue(v Value) int {
	n := 0
	for _, e := range d.values {
		if Equal(e, v) {
			n++
		}
	}
	return n
}

// KeysAndValues returns parallel, insertion-ordered slices of the dictionary
// contents, borrowed (not retained for the caller).
func (d *Dictionary) KeysAndValues() ([]string, []Value) {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	vals := make([]Value, len(d.values))
	copy(vals, d.values)
	return keys, vals
}

func (d *Dictionary) Retain() Value {
	d.RetainSelf()
	return d
}

func (d *Dictionary) Release() {
	if d.ReleaseSelf() {
		leaktrack.Untrack(d)
		for _, v := range d.values {
			Release(v)
		}
		d.keys, d.values = nil, nil
	}
}

// Equal requires the same key set and, for every key, Equal values;
// insertion order is not significant to equality.
func (d *Dictionary) Equal(other Value) bool {
	o, ok := other.(*Dictionary)
	if !ok || len(d.keys) != len(o.keys) {
		return false
	}
	for i, k := range d.keys {
		ov, ok := o.Get(k)
		if !ok || !Equal(d.values[i], ov) {
			return false
		}
	}
	return true
}

func (d *Dictionary) Describe() string {
	return fmt.Sprintf("<Dictionary count=%d>", len(d.keys))
}

func (d *Dictionary) DeepCopy() Value {
	cp := NewMutableDictionary()
	cp.immutable = d.immutable
	for i, k := range d.keys {
		cp.keys = append(cp.keys, k)
		cp.values = append(cp.values, DeepCopy(d.values[i]))
	}
	return cp
}

// JSON implements spec §4.3: a Dictionary renders as a JSON object keyed by
// its string keys, each value rendered in the requested mode. In typed
// mode the whole object is additionally wrapped with a "type" tag, since a
// bare JSON object is otherwise ambiguous with a typed-element wrapper.
func (d *Dictionary) JSON(typed bool) (any, error) {
	obj := make(map[string]any, len(d.keys))
	for i, k := range d.keys {
		j, err := d.values[i].JSON(typed)
		if err != nil {
			return nil, err
		}
		obj[k] = j
	}
	if !typed {
		return obj, nil
	}
	return map[string]any{"type": "OCDictionary", "value": obj}, nil
}

func decodeDictionaryTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCDictionary expects a JSON object", ErrTypeMismatch)
	}
	rawValue, ok := obj["value"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCDictionary value must be an object", ErrTypeMismatch)
	}
	if DecodeAnyTyped == nil {
		return nil, ErrJSONNotWired
	}
	d := NewMutableDictionary()
	for k, raw := range rawValue {
		v, err := DecodeAnyTyped(raw)
		if err != nil {
			for _, e := range d.values {
				Release(e)
			}
			return nil, err
		}
		d.Set(k, v)
		Release(v)
	}
	return d, nil
}
