package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataBytesAndLength(t *testing.T) {
	d := NewData([]byte("hello"))
	assert.Equal(t, []byte("hello"), d.Bytes())
	assert.Equal(t, 5, d.Length())
}

func TestDataAppendAndSetLength(t *testing.T) {
	d := NewMutableData(0)
	d.Append([]byte("abc"))
	assert.Equal(t, 3, d.Length())

	require.NoError(t, d.SetLength(5))
	assert.Equal(t, 5, d.Length())

	require.NoError(t, d.SetLength(2))
	assert.Equal(t, []byte("ab"), d.Bytes())
}

func TestDataJSONBase64RoundTrip(t *testing.T) {
	d := NewData([]byte{0x00, 0x01, 0xFF, 0x10})
	node, err := d.JSON(true)
	require.NoError(t, err)

	built, err := decodeDataTyped(node)
	require.NoError(t, err)
	cp := built.(*Data)
	assert.True(t, d.Equal(cp))
}

func TestDataEqual(t *testing.T) {
	a := NewData([]byte("same"))
	b := NewData([]byte("same"))
	c := NewData([]byte("different"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
