package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPairSetAddPairNoOverwrite(t *testing.T) {
	s := NewIndexPairSet()
	defer s.Release()

	assert.True(t, s.AddPair(1, 100))
	assert.False(t, s.AddPair(1, 200))
	assert.Equal(t, int64(100), s.ValueForIndex(1))
}

func TestIndexPairSetValueForIndexNotFound(t *testing.T) {
	s := NewIndexPairSet()
	defer s.Release()
	assert.Equal(t, NotFound, s.ValueForIndex(42))
}

func TestIndexPairSetRemoveIndex(t *testing.T) {
	s := NewIndexPairSet(IndexPair{1, 10}, IndexPair{2, 20})
	defer s.Release()

	s.RemoveIndex(1)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, NotFound, s.ValueForIndex(1))
	assert.Equal(t, int64(20), s.ValueForIndex(2))
}

func TestIndexPairSetFirstLast(t *testing.T) {
	empty := NewIndexPairSet()
	defer empty.Release()
	assert.Equal(t, IndexPair{NotFound, NotFound}, empty.First())
	assert.Equal(t, IndexPair{NotFound, NotFound}, empty.Last())

	s := NewIndexPairSet(IndexPair{3, 30}, IndexPair{1, 10}, IndexPair{2, 20})
	defer s.Release()
	assert.Equal(t, IndexPair{1, 10}, s.First())
	assert.Equal(t, IndexPair{3, 30}, s.Last())
}

func TestIndexPairSetRoundTripBothEncodings(t *testing.T) {
	s := NewIndexPairSet(IndexPair{1, 10}, IndexPair{2, 20}, IndexPair{5, 50})
	defer s.Release()

	node, err := s.JSON(true)
	require.NoError(t, err)
	obj := node.(map[string]any)
	assert.Equal(t, "none", obj["encoding"])

	built, err := decodeIndexPairSetTyped(node)
	require.NoError(t, err)
	cp := built.(*IndexPairSet)
	defer cp.Release()
	assert.True(t, s.Equal(cp))
	assert.Equal(t, EncodingNone, cp.encoding)

	s.SetEncoding(EncodingBase64)
	node2, err := s.JSON(true)
	require.NoError(t, err)
	obj2 := node2.(map[string]any)
	assert.Equal(t, "base64", obj2["encoding"])

	built2, err := decodeIndexPairSetTyped(node2)
	require.NoError(t, err)
	cp2 := built2.(*IndexPairSet)
	defer cp2.Release()
	assert.True(t, s.Equal(cp2))
	assert.Equal(t, EncodingBase64, cp2.encoding)
}

func TestIndexPairSetDeepCopyPropagatesEncoding(t *testing.T) {
	s := NewIndexPairSet(IndexPair{1, 10})
	s.SetEncoding(EncodingBase64)
	defer s.Release()

	cp := s.DeepCopy().(*IndexPairSet)
	defer cp.Release()
	assert.Equal(t, EncodingBase64, cp.encoding)
}
