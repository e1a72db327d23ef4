package value

import (
	"encoding/binary"
	"fmt"
	"math"
)

func kindByteWidth(kind NumericType) int {
	switch kind {
	case KindUInt8, KindInt8:
		return 1
	case KindUInt16, KindInt16:
		return 2
	case KindUInt32, KindInt32, KindFloat32:
		return 4
	case KindUInt64, KindInt64, KindFloat64:
		return 8
	case KindComplex64:
		return 8
	case KindComplex128:
		return 16
	default:
		return 0
	}
}

// ArrayFromData reinterprets d's raw bytes as a homogeneous Array of kind,
// little-endian (spec §6's numeric-array/raw-buffer interop). The byte
// length must be an exact multiple of kind's element width.
func ArrayFromData(d *Data, kind NumericType) (*Array, error) {
	if d == nil {
		return nil, ErrNilArgument
	}
	width := kindByteWidth(kind)
	if width == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	raw := d.Bytes()
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("%w: data length %d not a multiple of element width %d", ErrLengthMismatch, len(raw), width)
	}
	count := len(raw) / width
	arr := NewMutableArray(count)
	for i := 0; i < count; i++ {
		chunk := raw[i*width : (i+1)*width]
		var n *Number
		switch kind {
		case KindUInt8:
			n = NewUInt8(chunk[0])
		case KindInt8:
			n = NewInt8(int8(chunk[0]))
		case KindUInt16:
			n = NewUInt16(binary.LittleEndian.Uint16(chunk))
		case KindInt16:
			n = NewInt16(int16(binary.LittleEndian.Uint16(chunk)))
		case KindUInt32:
			n = NewUInt32(binary.LittleEndian.Uint32(chunk))
		case KindInt32:
			n = NewInt32(int32(binary.LittleEndian.Uint32(chunk)))
		case KindUInt64:
			n = NewUInt64(binary.LittleEndian.Uint64(chunk))
		case KindInt64:
			n = NewInt64(int64(binary.LittleEndian.Uint64(chunk)))
		case KindFloat32:
			n = NewFloat32(math.Float32frombits(binary.LittleEndian.Uint32(chunk)))
		case KindFloat64:
			n = NewFloat64(math.Float64frombits(binary.LittleEndian.Uint64(chunk)))
		case KindComplex64:
			re := math.Float32frombits(binary.LittleEndian.Uint32(chunk[0:4]))
			im := math.Float32frombits(binary.LittleEndian.Uint32(chunk[4:8]))
			n = NewComplex64(complex(re, im))
		case KindComplex128:
			re := math.Float64frombits(binary.LittleEndian.Uint64(chunk[0:8]))
			im := math.Float64frombits(binary.LittleEndian.Uint64(chunk[8:16]))
			n = NewComplex128(complex(re, im))
		}
		_ = arr.Append(n)
		Release(n)
	}
	return arr, nil
}

// DataFromArray packs a's elements as little-endian fixed-width values of
// kind into a fresh Data buffer. Every element must be a *Number; a
// non-Number element returns ErrTypeMismatch. A Number whose own kind differs
// from kind is not rejected: it is packed through kind's accessor
// (Uint64Value, Int64Value, AsFloat64 or AsComplexParts) unchecked — callers
// that care should check a.HomogeneousNumericKind() first.
func DataFromArray(a *Array, kind NumericType) (*Data, error) {
	if a == nil {
		return nil, ErrNilArgument
	}
	width := kindByteWidth(kind)
	if width == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	buf := make([]byte, 0, a.Count()*width)
	for _, e := range a.elems {
		n, ok := e.(*Number)
		if !ok {
			return nil, fmt.Errorf("%w: array element is not a Number", ErrTypeMismatch)
		}
		chunk := make([]byte, width)
		switch kind {
		case KindUInt8:
			chunk[0] = byte(n.Uint64Value())
		case KindInt8:
			chunk[0] = byte(n.Int64Value())
		case KindUInt16:
			binary.LittleEndian.PutUint16(chunk, uint16(n.Uint64Value()))
		case KindInt16:
			binary.LittleEndian.PutUint16(chunk, uint16(n.Int64Value()))
		case KindUInt32:
			binary.LittleEndian.PutUint32(chunk, uint32(n.Uint64Value()))
		case KindInt32:
			binary.LittleEndian.PutUint32(chunk, uint32(n.Int64Value()))
		case KindUInt64:
			binary.LittleEndian.PutUint64(chunk, n.Uint64Value())
		case KindInt64:
			binary.LittleEndian.PutUint64(chunk, uint64(n.Int64Value()))
		case KindFloat32:
			binary.LittleEndian.PutUint32(chunk, math.Float32bits(float32(n.AsFloat64())))
		case KindFloat64:
			binary.LittleEndian.PutUint64(chunk, math.Float64bits(n.AsFloat64()))
		case KindComplex64:
			re, im := n.AsComplexParts()
			binary.LittleEndian.PutUint32(chunk[0:4], math.Float32bits(float32(re)))
			binary.LittleEndian.PutUint32(chunk[4:8], math.Float32bits(float32(im)))
		case KindComplex128:
			re, im := n.AsComplexParts()
			binary.LittleEndian.PutUint64(chunk[0:8], math.Float64bits(re))
			binary.LittleEndian.PutUint64(chunk[8:16], math.Float64bits(im))
		}
		buf = append(buf, chunk...)
	}
	return NewData(buf), nil
}
