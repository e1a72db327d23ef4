package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanSingletonsAreIdentity(t *testing.T) {
	assert.Same(t, True, BooleanFor(true))
	assert.Same(t, False, BooleanFor(false))
	assert.NotSame(t, True, False)
	assert.True(t, True.Equal(BooleanFor(true)))
	assert.False(t, True.Equal(False))
}

func TestBooleanRetainReleaseAreNoOps(t *testing.T) {
	True.Retain()
	True.Release()
	assert.EqualValues(t, 0, True.RetainCount())
	assert.True(t, True.IsStatic())
}

func TestNullSingleton(t *testing.T) {
	assert.Same(t, NullValue, NullValue.DeepCopy())
	assert.True(t, NullValue.Equal(NullValue))
	node, err := NullValue.JSON(false)
	assert.NoError(t, err)
	assert.Nil(t, node)
}

func TestDecodeBooleanAndNullTyped(t *testing.T) {
	b, err := decodeBooleanTyped(true)
	assert.NoError(t, err)
	assert.Same(t, True, b)

	n, err := decodeNullTyped(nil)
	assert.NoError(t, err)
	assert.Same(t, NullValue, n)

	_, err = decodeBooleanTyped("not a bool")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
