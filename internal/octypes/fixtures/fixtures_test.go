package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

func TestGenerateManyProducesRequestedCount(t *testing.T) {
	Seed(1)
	g := NewGenerator()
	graphs := g.GenerateMany(10)
	require.Len(t, graphs, 10)
	for _, v := range graphs {
		require.NotNil(t, v)
		value.Release(v)
	}
}

func TestGenerateRespectsMaxDepth(t *testing.T) {
	Seed(2)
	g := &Generator{MaxDepth: 0, MaxElements: 5}
	v := g.Generate(0)
	defer value.Release(v)

	switch v.(type) {
	case *value.Array, *value.Dictionary, *value.Set, *value.IndexSet, *value.IndexPairSet:
		t.Fatalf("MaxDepth=0 should only ever produce scalars, got %T", v)
	}
}

func TestSeedMakesGenerationReproducible(t *testing.T) {
	Seed(42)
	g := NewGenerator()
	a := g.GenerateMany(5)

	Seed(42)
	b := NewGenerator().GenerateMany(5)

	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "graph %d differs after reseeding", i)
		value.Release(a[i])
		value.Release(b[i])
	}
}
