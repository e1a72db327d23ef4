package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringBasics(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, s.Length())
	assert.False(t, s.IsMutable())
	assert.Error(t, s.Append(" world"))
}

func TestMutableStringAppendAndSet(t *testing.T) {
	s := NewMutableString(0)
	require.NoError(t, s.Append("ab"))
	require.NoError(t, s.Append("cd"))
	assert.Equal(t, "abcd", s.String())

	require.NoError(t, s.SetString("xyz"))
	assert.Equal(t, "xyz", s.String())
}

func TestStringEqualAndDeepCopy(t *testing.T) {
	a := NewString("same")
	b := NewString("same")
	assert.True(t, a.Equal(b))

	cp := a.DeepCopy().(*String)
	assert.True(t, a.Equal(cp))
	assert.NotSame(t, a, cp)
}

func TestInternReturnsCanonicalInstance(t *testing.T) {
	a := Intern("canonical-value")
	b := Intern("canonical-value")
	assert.Same(t, a, b)
	assert.True(t, a.IsStatic())
}

func TestStringRetainRelease(t *testing.T) {
	s := NewString("refcounted")
	s.Retain()
	assert.EqualValues(t, 2, s.RetainCount())
	s.Release()
	assert.EqualValues(t, 1, s.RetainCount())
}
