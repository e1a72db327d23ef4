package value

import (
	"encoding/base64"
	"fmt"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

var dataTypeID = registry.MustRegister("OCData", decodeDataTyped)

// Data is an owned or non-owning mutable byte buffer (spec §3.2 row Data).
type Data struct {
	object.Counter
	buf      []byte
	nonOwned bool
}

// NewData copies b into a freshly owned buffer.
func NewData(b []byte) *Data {
	owned := make([]byte, len(b))
	copy(owned, b)
	d := &Data{Counter: object.New(dataTypeID), buf: owned}
	leaktrack.Track(d, dataTypeID, "")
	return d
}

// NewDataNoCopy wraps b without copying; the caller retains ownership
// responsibility for not mutating b elsewhere while this Data is alive.
func NewDataNoCopy(b []byte) *Data {
	d := &Data{Counter: object.New(dataTypeID), buf: b, nonOwned: true}
	leaktrack.Track(d, dataTypeID, "")
	return d
}

// NewMutableData returns an empty Data with the given initial capacity.
func NewMutableData(capacity int) *Data {
	if capacity < 0 {
		capacity = 0
	}
	d := &Data{Counter: object.New(dataTypeID), buf: make([]byte, 0, capacity)}
	leaktrack.Track(d, dataTypeID, "")
	return d
}

// Bytes returns a borrowed view of the buffer; callers must not retain it
// past the Data's lifetime.
func (d *Data) Bytes() []byte { return d.buf }

// Length returns the number of bytes currently stored.
func (d *Data) Length() int { return len(d.buf) }

// Append grows the buffer by appending more.
func (d *Data) Append(more []byte) {
	d.buf = append(d.buf, more...)
	d.nonOwned = false
}

// SetLength truncates or zero-extends the buffer to exactly n bytes.
func (d *Data) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length", ErrIndexOutOfRange)
	}
	if n <= len(d.buf) {
		d.buf = d.buf[:n]
		return nil
	}
	grown := make([]byte, n)
	copy(grown, d.buf)
	d.buf = grown
	d.nonOwned = false
	return nil
}

func (d *Data) Retain() Value {
	d.RetainSelf()
	return d
}

func (d *Data) Release() {
	if d.ReleaseSelf() {
		leaktrack.Untrack(d)
		d.buf = nil
	}
}

func (d *Data) Equal(other Value) bool {
	o, ok := other.(*Data)
	if !ok || len(d.buf) != len(o.buf) {
		return false
	}
	for i := range d.buf {
		if d.buf[i] != o.buf[i] {
			return false
		}
	}
	return true
}

func (d *Data) Describe() string {
	return fmt.Sprintf("<Data length=%d>", len(d.buf))
}

func (d *Data) DeepCopy() Value { return NewData(d.buf) }

// JSON renders the buffer as a base64 string in both typed and untyped
// mode (spec §4.3.1/§4.3.2: OCData is always base64-encoded JSON).
func (d *Data) JSON(typed bool) (any, error) {
	encoded := base64.StdEncoding.EncodeToString(d.buf)
	if !typed {
		return encoded, nil
	}
	return map[string]any{"type": "OCData", "encoding": "base64", "value": encoded}, nil
}

func decodeDataTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCData expects a JSON object", ErrTypeMismatch)
	}
	encoding, _ := obj["encoding"].(string)
	valueStr, ok := obj["value"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: OCData missing string value", ErrTypeMismatch)
	}
	if encoding != "" && encoding != "base64" {
		return nil, fmt.Errorf("%w: unsupported OCData encoding %q", ErrTypeMismatch, encoding)
	}
	raw, err := base64.StdEncoding.DecodeString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("octypes: decode OCData base64: %w", err)
	}
	return NewData(raw), nil
}
