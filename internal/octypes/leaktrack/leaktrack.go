// Package leaktrack records live, non-static allocations so a process can
// report anything still outstanding at shutdown, grouped by type. It is the
// one internally-synchronized structure in the whole core (spec §5): a
// single mutex guards both the table and the allocation count. Track and
// Untrack never block other object operations because they only ever touch
// this package's own map, never the caller's object body.
package leaktrack

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

// Entry describes one live, tracked allocation.
type Entry struct {
	TypeID registry.TypeID
	Hint   string // optional allocation_hint, often a uuid when enabled
}

var (
	mu      sync.Mutex
	live    = map[any]Entry{}
	enabled = true
)

// SetEnabled toggles tracking process-wide; disabling is useful for CLI
// invocations that process large fixture batches and don't care about leak
// reporting (internal/octypes/config controls this by default).
func SetEnabled(v bool) {
	mu.Lock()
	enabled = v
	mu.Unlock()
}

// Track records obj (identified by pointer identity) as live. hint is an
// optional human-readable allocation context; pass "" for none. When a hint
// is requested but not supplied by the caller, TrackWithUUID below tags the
// entry with a fresh UUID instead, which is useful for telling apart many
// identically-described leaked objects in a report.
func Track(obj any, typeID registry.TypeID, hint string) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	live[obj] = Entry{TypeID: typeID, Hint: hint}
}

// TrackWithUUID behaves like Track but, when hint is empty, tags the entry
// with a freshly generated UUID so leak reports can distinguish otherwise
// identical allocations (mirrors cmd/auditr's uuid.NewString() event tagging
// pattern, repurposed here for allocation hints).
func TrackWithUUID(obj any, typeID registry.TypeID, hint string) {
	if hint == "" {
		hint = uuid.NewString()
	}
	Track(obj, typeID, hint)
}

// Untrack removes obj from the live table. Called from inside Release right
// before the object becomes eligible for garbage collection.
func Untrack(obj any) {
	mu.Lock()
	delete(live, obj)
	mu.Unlock()
}

// Count returns the number of currently tracked live allocations.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(live)
}

// Report groups remaining live allocations by type name and returns a
// human-readable summary, one line per type plus a total. An empty string
// means a clean run: no non-static leaks.
func Report() string {
	mu.Lock()
	byType := map[string]int{}
	for _, e := range live {
		byType[registry.NameOf(e.TypeID)]++
	}
	total := len(live)
	mu.Unlock()

	if total == 0 {
		return ""
	}
	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	out := fmt.Sprintf("leak report: %d live non-static object(s)\n", total)
	for _, name := range names {
		out += fmt.Sprintf("  %-20s %d\n", name, byType[name])
	}
	return out
}

// Reset clears the live table. Intended for test isolation only.
func Reset() {
	mu.Lock()
	live = map[any]Entry{}
	mu.Unlock()
}
