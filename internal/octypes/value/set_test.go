package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddIsDedupedByEqual(t *testing.T) {
	s := NewSet()
	defer s.Release()

	a := NewInt64(1)
	b := NewInt64(1)
	defer func() { a.Release(); b.Release() }()

	s.Add(a)
	s.Add(b)
	assert.Equal(t, 1, s.Count())
}

func TestSetRemove(t *testing.T) {
	s := NewSet()
	defer s.Release()

	a := NewInt64(1)
	defer a.Release()
	s.Add(a)
	s.Remove(NewInt64(1))
	assert.Equal(t, 0, s.Count())
}

func TestSetContainsAndValues(t *testing.T) {
	s := NewSet()
	defer s.Release()

	a, b := NewString("x"), NewString("y")
	defer func() { a.Release(); b.Release() }()
	s.Add(a)
	s.Add(b)

	assert.True(t, s.Contains(NewString("x")))
	assert.False(t, s.Contains(NewString("z")))
	assert.Len(t, s.Values(), 2)
}

func TestSetEqualIsCardinalityAndMembership(t *testing.T) {
	s1, s2 := NewSet(), NewSet()
	defer func() { s1.Release(); s2.Release() }()

	a, b := NewInt64(1), NewInt64(2)
	defer func() { a.Release(); b.Release() }()

	s1.Add(a)
	s1.Add(b)
	s2.Add(b)
	s2.Add(a)

	assert.True(t, s1.Equal(s2))
}

func TestSetDeepCopyIsIndependent(t *testing.T) {
	s := NewSet()
	n := NewInt64(1)
	s.Add(n)
	n.Release()

	cp := s.DeepCopy().(*Set)
	defer func() { s.Release(); cp.Release() }()

	cp.Add(NewInt64(2))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, cp.Count())
}

func TestSetTypedRoundTrip(t *testing.T) {
	prev := DecodeAnyTyped
	DecodeAnyTyped = fromTypedStub
	defer func() { DecodeAnyTyped = prev }()

	s := NewSet()
	v := NewString("only")
	s.Add(v)
	v.Release()

	node, err := s.JSON(true)
	require.NoError(t, err)

	built, err := decodeSetTyped(node)
	require.NoError(t, err)
	cp := built.(*Set)
	defer func() { s.Release(); cp.Release() }()

	assert.True(t, cp.Contains(NewString("only")))
}
