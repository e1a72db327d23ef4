package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberKindRoundTripByName(t *testing.T) {
	for _, k := range []NumericType{
		KindUInt8, KindUInt16, KindUInt32, KindUInt64,
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64, KindComplex64, KindComplex128,
	} {
		got, ok := NumericTypeByName(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestNumberUint64MaxExactJSON(t *testing.T) {
	n := NewUInt64(18446744073709551615)
	node, err := n.JSON(false)
	require.NoError(t, err)

	raw, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", string(raw))
}

func TestNumberFloatDescribeNoTrailingGarbage(t *testing.T) {
	n := NewFloat64(0.6)
	assert.Equal(t, "0.6", n.Describe())
}

func TestNumberComplexJSONPair(t *testing.T) {
	n := NewComplex128(complex(3, -4))
	node, err := n.JSON(false)
	require.NoError(t, err)
	pair, ok := node.([]any)
	require.True(t, ok)
	require.Len(t, pair, 2)
	assert.InDelta(t, 3.0, pair[0], 1e-9)
	assert.InDelta(t, -4.0, pair[1], 1e-9)
}

func TestNumberEqualityPromotesToFloat64(t *testing.T) {
	a := NewInt32(42)
	b := NewFloat64(42.0)
	assert.True(t, a.Equal(b))
}

func TestDecodeNumberTypedExactInt64(t *testing.T) {
	node := map[string]any{
		"type":    "OCNumber",
		"subtype": "int64",
		"value":   json.Number("-9223372036854775808"),
	}
	built, err := decodeNumberTyped(node)
	require.NoError(t, err)
	n := built.(*Number)
	assert.Equal(t, int64(-9223372036854775808), n.Int64Value())
}

func TestDecodeNumberTypedRejectsUnknownSubtype(t *testing.T) {
	node := map[string]any{
		"type":    "OCNumber",
		"subtype": "nonsense",
		"value":   json.Number("1"),
	}
	_, err := decodeNumberTyped(node)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestNumberDeepCopyIsIndependent(t *testing.T) {
	n := NewInt16(7)
	cp := n.DeepCopy().(*Number)
	assert.True(t, n.Equal(cp))
	assert.NotSame(t, n, cp)
}
