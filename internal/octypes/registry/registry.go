// Package registry implements the process-wide type table: an append-only
// list of (name, JSON factory) entries indexed by TypeID. Every concrete
// value type registers itself exactly once, on first use, and the registry
// gives the JSON layer a name->constructor lookup for typed deserialization.
package registry

import (
	"fmt"
	"sync"
)

// TypeID is a registry index. The zero value is reserved for "not a type".
type TypeID uint32

// Invalid is the id returned for names that have never been registered, and
// the id no object may legitimately carry.
const Invalid TypeID = 0

// Identifiable is the minimal capability Factory results must provide; it is
// intentionally tiny so that this package never needs to import the value
// package (which itself depends on registry.TypeID), avoiding an import
// cycle the same way the teacher kept parsers independent of cmd.
type Identifiable interface {
	TypeID() TypeID
}

// Factory builds a value from a decoded JSON node (see ocjson for the node
// shapes). It is the typed-JSON constructor for one registered type.
type Factory func(node any) (Identifiable, error)

type entry struct {
	name    string
	factory Factory
}

var (
	mu      sync.Mutex
	entries []entry               // index 0 unused; ids start at 1
	byName  = map[string]TypeID{} // idempotent lookup
)

// Register assigns a TypeID to name, or returns the existing id if name was
// already registered. Safe to call from multiple goroutines and from
// multiple package-level init()s; idempotent by name per spec.
func Register(name string, factory Factory) TypeID {
	mu.Lock()
	defer mu.Unlock()
	if id, ok := byName[name]; ok {
		return id
	}
	entries = append(entries, entry{name: name, factory: factory})
	id := TypeID(len(entries))
	byName[name] = id
	return id
}

// NameOf returns the registered name for id, or "" if id was never
// registered.
func NameOf(id TypeID) string {
	mu.Lock()
	defer mu.Unlock()
	if id == Invalid || int(id) > len(entries) {
		return ""
	}
	return entries[id-1].name
}

// FactoryOf returns the typed-JSON constructor for id.
func FactoryOf(id TypeID) (Factory, bool) {
	mu.Lock()
	defer mu.Unlock()
	if id == Invalid || int(id) > len(entries) {
		return nil, false
	}
	return entries[id-1].factory, true
}

// FactoryByName looks a factory up directly by its registered type name, the
// path the JSON "type" tag reconstruction takes.
func FactoryByName(name string) (Factory, TypeID, bool) {
	mu.Lock()
	id, ok := byName[name]
	mu.Unlock()
	if !ok {
		return nil, Invalid, false
	}
	f, ok := FactoryOf(id)
	return f, id, ok
}

// MustRegister is Register, but panics if factory is nil; used at
// package-init time where a nil factory is always a programming error.
func MustRegister(name string, factory Factory) TypeID {
	if factory == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", name))
	}
	return Register(name, factory)
}
