package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
)

func TestArrayAppendGrowsAndBootstraps(t *testing.T) {
	a := NewMutableArray(0)
	for i := 0; i < 5; i++ {
		n := NewInt64(int64(i))
		require.NoError(t, a.Append(n))
		n.Release()
	}
	assert.Equal(t, 5, a.Count())
	v, err := a.GetAt(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*Number).Int64Value())
}

func TestArrayInsertRemoveSetAt(t *testing.T) {
	a := NewMutableArray(0)
	x, y, z := NewString("x"), NewString("y"), NewString("z")
	defer func() { x.Release(); y.Release(); z.Release() }()

	require.NoError(t, a.Append(x))
	require.NoError(t, a.Append(z))
	require.NoError(t, a.InsertAt(1, y))
	assert.Equal(t, 3, a.Count())

	v, _ := a.GetAt(1)
	assert.Equal(t, "y", v.(*String).String())

	require.NoError(t, a.RemoveAt(1))
	assert.Equal(t, 2, a.Count())
	v, _ = a.GetAt(1)
	assert.Equal(t, "z", v.(*String).String())

	w := NewString("w")
	defer w.Release()
	require.NoError(t, a.SetAt(0, w))
	v, _ = a.GetAt(0)
	assert.Equal(t, "w", v.(*String).String())
}

func TestArrayOutOfRange(t *testing.T) {
	a := NewMutableArray(0)
	_, err := a.GetAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestArrayContainsAndFirstIndexOf(t *testing.T) {
	one := NewInt64(1)
	two := NewInt64(2)
	defer func() { one.Release(); two.Release() }()

	a := NewArray(one, two)
	defer a.Release()

	assert.True(t, a.Contains(NewInt64(1)))
	assert.Equal(t, 1, a.FirstIndexOf(NewInt64(2)))
	assert.Equal(t, -1, a.FirstIndexOf(NewInt64(99)))
}

func TestArrayHomogeneity(t *testing.T) {
	empty := NewMutableArray(0)
	assert.False(t, empty.IsHomogeneous())

	single := NewMutableArray(0)
	n := NewInt64(1)
	_ = single.Append(n)
	n.Release()
	assert.True(t, single.IsHomogeneous())

	mixed := NewMutableArray(0)
	a, b := NewInt64(1), NewString("x")
	_ = mixed.Append(a)
	_ = mixed.Append(b)
	a.Release()
	b.Release()
	assert.False(t, mixed.IsHomogeneous())
}

func TestArrayHomogeneousNumericKind(t *testing.T) {
	arr := NewMutableArray(0)
	for _, v := range []float64{1, 2, 3} {
		n := NewFloat64(v)
		_ = arr.Append(n)
		n.Release()
	}
	kind, ok := arr.HomogeneousNumericKind()
	require.True(t, ok)
	assert.Equal(t, KindFloat64, kind)

	node, err := arr.JSON(false)
	require.NoError(t, err)
	flat, ok := node.([]any)
	require.True(t, ok)
	assert.Len(t, flat, 3)
}

func TestArraySortAndBinarySearch(t *testing.T) {
	arr := NewMutableArray(0)
	for _, v := range []int64{5, 1, 3, 2, 4} {
		n := NewInt64(v)
		_ = arr.Append(n)
		n.Release()
	}
	less := func(x, y Value) bool { return x.(*Number).Int64Value() < y.(*Number).Int64Value() }
	arr.Sort(less)

	for i := 0; i < arr.Count(); i++ {
		v, _ := arr.GetAt(i)
		assert.Equal(t, int64(i+1), v.(*Number).Int64Value())
	}

	target := NewInt64(3)
	defer target.Release()
	idx, found := arr.BinarySearch(target, less)
	require.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestArrayDeepCopyIsIndependent(t *testing.T) {
	a := NewMutableArray(0)
	n := NewInt64(1)
	_ = a.Append(n)
	n.Release()

	cp := a.DeepCopy().(*Array)
	require.NoError(t, cp.Append(NewInt64(2)))
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 2, cp.Count())
}

func TestArrayTypedRoundTripIsLeakBalanced(t *testing.T) {
	prev := DecodeAnyTyped
	DecodeAnyTyped = fromTypedStub
	defer func() { DecodeAnyTyped = prev }()

	leaktrack.SetEnabled(true)
	defer leaktrack.SetEnabled(false)
	before := leaktrack.Count()

	arr := NewMutableArray(0)
	s := NewString("hi")
	_ = arr.Append(s)
	s.Release()

	node, err := arr.JSON(true)
	require.NoError(t, err)

	built, err := decodeArrayTyped(node)
	require.NoError(t, err)
	cp := built.(*Array)
	require.Equal(t, 1, cp.Count())
	v, _ := cp.GetAt(0)
	assert.Equal(t, "hi", v.(*String).String())
	cp.Release()

	arr.Release()
	assert.Equal(t, before, leaktrack.Count(), "decodeArrayTyped must leave no outstanding retains")
}

func TestArrayNumericTypedRoundTripIsLeakBalanced(t *testing.T) {
	leaktrack.SetEnabled(true)
	defer leaktrack.SetEnabled(false)
	before := leaktrack.Count()

	arr := NewMutableArray(0)
	for _, v := range []float64{1, 2, 3} {
		n := NewFloat64(v)
		_ = arr.Append(n)
		n.Release()
	}

	node, err := arr.JSON(true)
	require.NoError(t, err)
	arr.Release()

	built, err := decodeArrayTyped(node)
	require.NoError(t, err)
	cp := built.(*Array)
	cp.Release()

	assert.Equal(t, before, leaktrack.Count(), "decodeArrayTyped's numeric-optimized path must leave no outstanding retains")
}

// fromTypedStub lets array_test.go exercise decodeArrayTyped's recursive
// path without importing ocjson (which would import value and cycle back).
func fromTypedStub(node any) (Value, error) {
	switch n := node.(type) {
	case string:
		return NewString(n), nil
	default:
		return nil, ErrTypeMismatch
	}
}
