// Package fixtures builds random, arbitrarily nested value.Value graphs for
// round-trip property testing and for cmd/ocgen's seed data, using gofakeit
// the way the teacher's loadr package drove its synthetic record generation.
package fixtures

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

// Generator produces random value graphs. Seed makes a run reproducible,
// matching gofakeit.Seed's use in the teacher's loadr.Load.
type Generator struct {
	MaxDepth    int
	MaxElements int
}

// NewGenerator returns a Generator with reasonable bounds on recursion and
// container width.
func NewGenerator() *Generator {
	return &Generator{MaxDepth: 3, MaxElements: 5}
}

// Seed makes subsequent Generate calls reproducible.
func Seed(seed int64) { gofakeit.Seed(seed) }

// Generate returns one random value.Value, recursing into containers up to
// g.MaxDepth.
func (g *Generator) Generate(depth int) value.Value {
	if depth >= g.MaxDepth {
		return g.scalar()
	}
	switch gofakeit.Number(0, 7) {
	case 0, 1, 2:
		return g.scalar()
	case 3:
		return g.array(depth)
	case 4:
		return g.dictionary(depth)
	case 5:
		return g.set(depth)
	case 6:
		return g.indexSet()
	default:
		return g.indexPairSet()
	}
}

// GenerateMany returns n independent random value graphs.
func (g *Generator) GenerateMany(n int) []value.Value {
	out := make([]value.Value, n)
	for i := range out {
		out[i] = g.Generate(0)
	}
	return out
}

func (g *Generator) scalar() value.Value {
	switch gofakeit.Number(0, 6) {
	case 0:
		return value.NewString(gofakeit.Sentence(3))
	case 1:
		return value.NewInt64(int64(gofakeit.Number(-1_000_000, 1_000_000)))
	case 2:
		return value.NewUInt64(uint64(gofakeit.Number(0, 1_000_000)))
	case 3:
		return value.NewFloat64(gofakeit.Float64Range(-1e6, 1e6))
	case 4:
		return value.BooleanFor(gofakeit.Bool())
	case 5:
		return value.NewData([]byte(gofakeit.LetterN(16)))
	default:
		return value.NullValue
	}
}

func (g *Generator) array(depth int) *value.Array {
	n := gofakeit.Number(0, g.MaxElements)
	arr := value.NewMutableArray(n)
	numeric := gofakeit.Bool()
	for i := 0; i < n; i++ {
		var v value.Value
		if numeric {
			v = value.NewFloat64(gofakeit.Float64Range(-1e3, 1e3))
		} else {
			v = g.Generate(depth + 1)
		}
		_ = arr.Append(v)
		value.Release(v)
	}
	return arr
}

func (g *Generator) dictionary(depth int) *value.Dictionary {
	n := gofakeit.Number(0, g.MaxElements)
	d := value.NewMutableDictionary()
	for i := 0; i < n; i++ {
		v := g.Generate(depth + 1)
		d.Set(gofakeit.Word(), v)
		value.Release(v)
	}
	return d
}

func (g *Generator) set(depth int) *value.Set {
	n := gofakeit.Number(0, g.MaxElements)
	s := value.NewSet()
	for i := 0; i < n; i++ {
		v := g.scalar()
		s.Add(v)
		value.Release(v)
	}
	return s
}

func (g *Generator) indexSet() *value.IndexSet {
	n := gofakeit.Number(0, g.MaxElements)
	s := value.NewIndexSet()
	for i := 0; i < n; i++ {
		s.Add(int64(gofakeit.Number(0, 1000)))
	}
	return s
}

func (g *Generator) indexPairSet() *value.IndexPairSet {
	n := gofakeit.Number(0, g.MaxElements)
	s := value.NewIndexPairSet()
	for i := 0; i < n; i++ {
		s.AddPair(int64(gofakeit.Number(0, 1000)), int64(gofakeit.Number(-1000, 1000)))
	}
	return s
}
