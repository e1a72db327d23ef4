package ocjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/octypes-go/internal/octypes/fixtures"
	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

func roundTripTyped(t *testing.T, v value.Value) value.Value {
	t.Helper()
	data, err := MarshalTyped(v)
	require.NoError(t, err)
	got, err := UnmarshalTyped(data)
	require.NoError(t, err)
	return got
}

func TestTypedRoundTripEveryReservedType(t *testing.T) {
	s := value.NewString("hi")
	n := value.NewInt64(42)
	d := value.NewData([]byte{1, 2, 3})
	arr := value.NewArray(value.NewInt64(1), value.NewString("x"))
	dict := value.NewMutableDictionary()
	dv := value.NewInt64(7)
	dict.Set("k", dv)
	dv.Release()
	set := value.NewSet()
	sv := value.NewString("m")
	set.Add(sv)
	sv.Release()
	idxSet := value.NewIndexSet(1, 2, 3)
	idxArr := value.NewIndexArray(4, 5, 6)
	idxPair := value.NewIndexPairSet(value.IndexPair{Index: 1, Value: 100})

	cases := []value.Value{s, n, d, arr, dict, set, idxSet, idxArr, idxPair, value.True, value.NullValue}
	for _, v := range cases {
		got := roundTripTyped(t, v)
		assert.True(t, v.Equal(got), "round trip mismatch for %T", v)
		value.Release(got)
	}

	for _, v := range []value.Value{s, n, d, arr, dict, set, idxSet, idxArr, idxPair} {
		value.Release(v)
	}
}

func TestUntypedDictionaryAndArrayShapeOnly(t *testing.T) {
	d := value.NewMutableDictionary()
	one := value.NewInt64(1)
	d.Set("a", one)
	one.Release()
	defer d.Release()

	node, err := ToUntyped(d)
	require.NoError(t, err)

	got, err := FromUntyped(node)
	require.NoError(t, err)
	defer value.Release(got)

	gotDict, ok := got.(*value.Dictionary)
	require.True(t, ok)
	v, ok := gotDict.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*value.Number).AsFloat64())
}

func TestFromTypedUnknownTypeTag(t *testing.T) {
	node := map[string]any{"type": "NotARealType", "value": 1}
	_, err := FromTyped(node)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestFromTypedMissingTypeField(t *testing.T) {
	node := map[string]any{"value": 1}
	_, err := FromTyped(node)
	assert.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestFromTypedArrayPropagatesElementError(t *testing.T) {
	node := []any{"ok", map[string]any{"type": "NotARealType"}}
	_, err := FromTyped(node)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestMarshalUnmarshalUntypedNumberPreservesLargeUint64(t *testing.T) {
	n := value.NewUInt64(18446744073709551615)
	defer n.Release()

	data, err := MarshalUntyped(n)
	require.NoError(t, err)

	got, err := UnmarshalUntyped(data)
	require.NoError(t, err)
	defer value.Release(got)

	// untyped round trip loses subtype identity, but survives as the same
	// numeric magnitude through json.Number.
	gotNum, ok := got.(*value.Number)
	require.True(t, ok)
	assert.InDelta(t, float64(18446744073709551615), gotNum.AsFloat64(), 1e4)
}

func TestRoundTripRandomGraphs(t *testing.T) {
	fixtures.Seed(12345)
	gen := fixtures.NewGenerator()
	graphs := gen.GenerateMany(25)

	for i, v := range graphs {
		got := roundTripTyped(t, v)
		assert.True(t, v.Equal(got), "graph %d failed typed round trip", i)
		value.Release(got)
		value.Release(v)
	}
}
