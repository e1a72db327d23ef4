package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

func TestNewStartsAtOne(t *testing.T) {
	c := New(registry.TypeID(1))
	assert.EqualValues(t, 1, c.RetainCount())
	assert.False(t, c.IsStatic())
}

func TestRetainReleaseCascade(t *testing.T) {
	c := New(registry.TypeID(1))
	c.RetainSelf()
	c.RetainSelf()
	assert.EqualValues(t, 3, c.RetainCount())

	assert.False(t, c.ReleaseSelf())
	assert.False(t, c.ReleaseSelf())
	assert.True(t, c.ReleaseSelf(), "the final release must signal finalize")
	assert.True(t, c.IsFinalized())
}

func TestStaticObjectsIgnoreRetainRelease(t *testing.T) {
	c := NewStatic(registry.TypeID(1))
	assert.EqualValues(t, 0, c.RetainCount())
	c.RetainSelf()
	assert.EqualValues(t, 0, c.RetainCount())
	assert.False(t, c.ReleaseSelf())
	assert.False(t, c.IsFinalized())
}

func TestTrackedFlag(t *testing.T) {
	c := New(registry.TypeID(1))
	assert.False(t, c.IsTracked())
	c.MarkTracked()
	assert.True(t, c.IsTracked())
}
