package value

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
	"github.com/vaibhaw-/octypes-go/internal/octypes/mathutil"
	"github.com/vaibhaw-/octypes-go/internal/octypes/object"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

// NumericType identifies one of the 12 scalar variants a Number can hold.
type NumericType uint8

const (
	KindUInt8 NumericType = iota
	KindUInt16
	KindUInt32
	KindUInt64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

var kindNames = [...]string{
	KindUInt8: "uint8", KindUInt16: "uint16", KindUInt32: "uint32", KindUInt64: "uint64",
	KindInt8: "int8", KindInt16: "int16", KindInt32: "int32", KindInt64: "int64",
	KindFloat32: "float32", KindFloat64: "float64",
	KindComplex64: "complex64", KindComplex128: "complex128",
}

// String returns the registered subtype name for a NumericType.
func (k NumericType) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// NumericTypeByName resolves a subtype name back to a NumericType.
func NumericTypeByName(name string) (NumericType, bool) {
	for i, n := range kindNames {
		if n == name {
			return NumericType(i), true
		}
	}
	return 0, false
}

func (k NumericType) isComplex() bool { return k == KindComplex64 || k == KindComplex128 }
func (k NumericType) isFloat() bool   { return k == KindFloat32 || k == KindFloat64 }
func (k NumericType) isSigned() bool {
	return k == KindInt8 || k == KindInt16 || k == KindInt32 || k == KindInt64
}
func (k NumericType) isUnsigned() bool {
	return k == KindUInt8 || k == KindUInt16 || k == KindUInt32 || k == KindUInt64
}

var numberTypeID = registry.MustRegister("OCNumber", decodeNumberTyped)

// Number is a tagged scalar over the 12 numeric variants of spec §2 row E.
type Number struct {
	object.Counter
	kind NumericType
	ival int64   // valid for signed integer kinds
	uval uint64  // valid for unsigned integer kinds
	fval float64 // valid for float32/float64 (widened; float64 represents any float32 exactly)
	real float64 // valid for complex64/complex128
	imag float64 // valid for complex64/complex128
}

func newNumber(kind NumericType) *Number {
	n := &Number{Counter: object.New(numberTypeID), kind: kind}
	leaktrack.Track(n, numberTypeID, "")
	return n
}

func NewUInt8(v uint8) *Number   { n := newNumber(KindUInt8); n.uval = uint64(v); return n }
func NewUInt16(v uint16) *Number { n := newNumber(KindUInt16); n.uval = uint64(v); return n }
func NewUInt32(v uint32) *Number { n := newNumber(KindUInt32); n.uval = uint64(v); return n }
func NewUInt64(v uint64) *Number { n := newNumber(KindUInt64); n.uval = v; return n }
func NewInt8(v int8) *Number     { n := newNumber(KindInt8); n.ival = int64(v); return n }
func NewInt16(v int16) *Number   { n := newNumber(KindInt16); n.ival = int64(v); return n }
func NewInt32(v int32) *Number   { n := newNumber(KindInt32); n.ival = int64(v); return n }
func NewInt64(v int64) *Number   { n := newNumber(KindInt64); n.ival = v; return n }
func NewFloat32(v float32) *Number {
	n := newNumber(KindFloat32)
	n.fval = float64(v)
	return n
}
func NewFloat64(v float64) *Number { n := newNumber(KindFloat64); n.fval = v; return n }
func NewComplex64(v complex64) *Number {
	n := newNumber(KindComplex64)
	n.real, n.imag = float64(real(v)), float64(imag(v))
	return n
}
func NewComplex128(v complex128) *Number {
	n := newNumber(KindComplex128)
	n.real, n.imag = real(v), imag(v)
	return n
}

// Kind returns the numeric variant.
func (n *Number) Kind() NumericType { return n.kind }

// AsFloat64 widens the real part of the value to float64, promoting
// whatever integer or float variant is stored (spec §3.3's equality
// promotion rule). For complex numbers this returns only the real part;
// use AsComplexParts for the full value.
func (n *Number) AsFloat64() float64 {
	switch {
	case n.kind.isComplex():
		return n.real
	case n.kind.isFloat():
		return n.fval
	case n.kind.isSigned():
		return float64(n.ival)
	default:
		return float64(n.uval)
	}
}

// AsComplexParts returns (real, imag), with imag defaulting to 0 for
// non-complex variants, per spec §3.3.
func (n *Number) AsComplexParts() (float64, float64) {
	if n.kind.isComplex() {
		return n.real, n.imag
	}
	return n.AsFloat64(), 0
}

// Uint64Value returns the stored value reinterpreted as uint64, valid for
// unsigned integer kinds.
func (n *Number) Uint64Value() uint64 { return n.uval }

// Int64Value returns the stored value reinterpreted as int64, valid for
// signed integer kinds.
func (n *Number) Int64Value() int64 { return n.ival }

// Complex128Value returns the full-precision complex value.
func (n *Number) Complex128Value() complex128 { return complex(n.real, n.imag) }

func (n *Number) Retain() Value {
	n.RetainSelf()
	return n
}

func (n *Number) Release() {
	if n.ReleaseSelf() {
		leaktrack.Untrack(n)
	}
}

func (n *Number) Equal(other Value) bool {
	o, ok := other.(*Number)
	if !ok {
		return false
	}
	ar, ai := n.AsComplexParts()
	br, bi := o.AsComplexParts()
	return mathutil.Float64Equal(ar, br) && mathutil.Float64Equal(ai, bi)
}

func (n *Number) DeepCopy() Value {
	cp := newNumber(n.kind)
	cp.ival, cp.uval, cp.fval, cp.real, cp.imag = n.ival, n.uval, n.fval, n.real, n.imag
	return cp
}

// Describe formats the value exactly: integers print with no padding or
// precision loss, floats use the shortest round-trippable representation
// (no trailing garbage digits), complex values print as "a+bi"/"a-bi".
func (n *Number) Describe() string {
	switch {
	case n.kind.isComplex():
		bits := 64
		if n.kind == KindComplex64 {
			bits = 32
		}
		return formatComplex(n.real, n.imag, bits)
	case n.kind == KindFloat32:
		return strconv.FormatFloat(float64(float32(n.fval)), 'g', -1, 32)
	case n.kind == KindFloat64:
		return strconv.FormatFloat(n.fval, 'g', -1, 64)
	case n.kind.isSigned():
		return strconv.FormatInt(n.ival, 10)
	default:
		return strconv.FormatUint(n.uval, 10)
	}
}

func formatComplex(re, im float64, bitSize int) string {
	reS := strconv.FormatFloat(re, 'g', -1, bitSize)
	imS := strconv.FormatFloat(im, 'g', -1, bitSize)
	if im >= 0 {
		return reS + "+" + imS + "i"
	}
	return reS + imS + "i"
}

// nativeValue returns the Go-native typed value for real (non-complex)
// kinds, so json.Marshal emits it with full, exact precision (unsigned
// 64-bit integers in particular must never pass through a float64).
func (n *Number) nativeValue() any {
	switch n.kind {
	case KindUInt8:
		return uint8(n.uval)
	case KindUInt16:
		return uint16(n.uval)
	case KindUInt32:
		return uint32(n.uval)
	case KindUInt64:
		return n.uval
	case KindInt8:
		return int8(n.ival)
	case KindInt16:
		return int16(n.ival)
	case KindInt32:
		return int32(n.ival)
	case KindInt64:
		return n.ival
	case KindFloat32:
		return float32(n.fval)
	default:
		return n.fval
	}
}

// JSON implements spec §4.3: OCNumber always carries a "type"/"subtype" tag
// in typed mode; untyped mode emits a bare number, or [real, imag] for
// complex variants.
func (n *Number) JSON(typed bool) (any, error) {
	if n.kind.isComplex() {
		pair := []any{n.real, n.imag}
		if !typed {
			return pair, nil
		}
		return map[string]any{"type": "OCNumber", "subtype": n.kind.String(), "value": pair}, nil
	}
	v := n.nativeValue()
	if !typed {
		return v, nil
	}
	return map[string]any{"type": "OCNumber", "subtype": n.kind.String(), "value": v}, nil
}

func decodeNumberTyped(node any) (registry.Identifiable, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: OCNumber expects a JSON object", ErrTypeMismatch)
	}
	subtypeRaw, ok := obj["subtype"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: OCNumber missing string subtype", ErrTypeMismatch)
	}
	kind, ok := NumericTypeByName(subtypeRaw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown OCNumber subtype %q", ErrUnsupportedKind, subtypeRaw)
	}
	value, ok := obj["value"]
	if !ok {
		return nil, fmt.Errorf("%w: OCNumber missing value", ErrTypeMismatch)
	}

	if kind.isComplex() {
		arr, ok := value.([]any)
		if !ok || len(arr) != 2 {
			return nil, fmt.Errorf("%w: complex OCNumber value must be a 2-element array", ErrTypeMismatch)
		}
		re, err := jsonNumberToFloat64(arr[0])
		if err != nil {
			return nil, err
		}
		im, err := jsonNumberToFloat64(arr[1])
		if err != nil {
			return nil, err
		}
		if kind == KindComplex64 {
			return NewComplex64(complex(float32(re), float32(im))), nil
		}
		return NewComplex128(complex(re, im)), nil
	}

	return numberFromJSONScalar(kind, value)
}

// jsonNumberToFloat64 accepts the node shapes encoding/json can hand back:
// json.Number (when the decoder used UseNumber), float64, or a bare string,
// plus the native Go numbers the JSON methods of this package emit.
func jsonNumberToFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return strconv.ParseFloat(fmt.Sprint(t), 64)
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("%w: expected a JSON number, got %T", ErrTypeMismatch, v)
	}
}

func jsonNumberString(v any) (string, error) {
	switch t := v.(type) {
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t), nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("%w: expected a JSON number, got %T", ErrTypeMismatch, v)
	}
}

// numberFromJSONScalar parses value according to kind with exact integer
// precision (routing through strconv rather than float64 for 64-bit
// integers, since a float64 intermediate would lose precision above 2^53).
func numberFromJSONScalar(kind NumericType, value any) (*Number, error) {
	s, err := jsonNumberString(value)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindUInt8:
		v, err := strconv.ParseUint(s, 10, 8)
		return NewUInt8(uint8(v)), err
	case KindUInt16:
		v, err := strconv.ParseUint(s, 10, 16)
		return NewUInt16(uint16(v)), err
	case KindUInt32:
		v, err := strconv.ParseUint(s, 10, 32)
		return NewUInt32(uint32(v)), err
	case KindUInt64:
		v, err := strconv.ParseUint(s, 10, 64)
		return NewUInt64(v), err
	case KindInt8:
		v, err := strconv.ParseInt(s, 10, 8)
		return NewInt8(int8(v)), err
	case KindInt16:
		v, err := strconv.ParseInt(s, 10, 16)
		return NewInt16(int16(v)), err
	case KindInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		return NewInt32(int32(v)), err
	case KindInt64:
		v, err := strconv.ParseInt(s, 10, 64)
		return NewInt64(v), err
	case KindFloat32:
		v, err := strconv.ParseFloat(s, 32)
		return NewFloat32(float32(v)), err
	case KindFloat64:
		v, err := strconv.ParseFloat(s, 64)
		return NewFloat64(v), err
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}
