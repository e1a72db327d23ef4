package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFromDataInt32(t *testing.T) {
	d := NewData([]byte{1, 0, 0, 0, 2, 0, 0, 0})
	arr, err := ArrayFromData(d, KindInt32)
	require.NoError(t, err)
	defer arr.Release()

	assert.Equal(t, 2, arr.Count())
	v, _ := arr.GetAt(0)
	assert.Equal(t, int64(1), v.(*Number).Int64Value())
	v, _ = arr.GetAt(1)
	assert.Equal(t, int64(2), v.(*Number).Int64Value())
}

func TestArrayFromDataRejectsMisalignedLength(t *testing.T) {
	d := NewData([]byte{1, 2, 3})
	_, err := ArrayFromData(d, KindInt32)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestArrayFromDataRejectsNilAndUnsupportedKind(t *testing.T) {
	_, err := ArrayFromData(nil, KindInt32)
	assert.ErrorIs(t, err, ErrNilArgument)

	d := NewData(nil)
	_, err = ArrayFromData(d, NumericType(99))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestDataFromArrayRoundTripsThroughArrayFromData(t *testing.T) {
	arr := NewMutableArray(0)
	for _, v := range []int64{10, -20, 30} {
		n := NewInt64(v)
		_ = arr.Append(n)
		n.Release()
	}
	defer arr.Release()

	d, err := DataFromArray(arr, KindInt64)
	require.NoError(t, err)

	back, err := ArrayFromData(d, KindInt64)
	require.NoError(t, err)
	defer back.Release()

	assert.True(t, arr.Equal(back))
}

func TestDataFromArrayRejectsNonNumberElement(t *testing.T) {
	arr := NewMutableArray(0)
	s := NewString("nope")
	_ = arr.Append(s)
	s.Release()
	defer arr.Release()

	_, err := DataFromArray(arr, KindInt32)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDataFromArrayComplex128(t *testing.T) {
	arr := NewMutableArray(0)
	n := NewComplex128(complex(1.5, -2.5))
	_ = arr.Append(n)
	n.Release()
	defer arr.Release()

	d, err := DataFromArray(arr, KindComplex128)
	require.NoError(t, err)
	assert.Equal(t, 16, d.Length())

	back, err := ArrayFromData(d, KindComplex128)
	require.NoError(t, err)
	defer back.Release()
	assert.True(t, arr.Equal(back))
}
