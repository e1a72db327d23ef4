package leaktrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
)

func TestTrackUntrackCount(t *testing.T) {
	Reset()
	SetEnabled(true)
	defer SetEnabled(true)

	a, b := new(int), new(int)
	id := registry.MustRegister("leaktrack_test.Thing", func(node any) (registry.Identifiable, error) { return nil, nil })

	Track(a, id, "")
	Track(b, id, "")
	assert.Equal(t, 2, Count())

	Untrack(a)
	assert.Equal(t, 1, Count())
	Untrack(b)
	assert.Equal(t, 0, Count())
}

func TestSetEnabledSuppressesTracking(t *testing.T) {
	Reset()
	SetEnabled(false)
	defer SetEnabled(true)

	id := registry.MustRegister("leaktrack_test.Disabled", func(node any) (registry.Identifiable, error) { return nil, nil })
	Track(new(int), id, "")
	assert.Equal(t, 0, Count())
}

func TestReportGroupsByType(t *testing.T) {
	Reset()
	SetEnabled(true)
	defer SetEnabled(true)

	id := registry.MustRegister("leaktrack_test.Reported", func(node any) (registry.Identifiable, error) { return nil, nil })
	a, b := new(int), new(int)
	Track(a, id, "")
	Track(b, id, "")

	report := Report()
	require.NotEmpty(t, report)
	assert.Contains(t, report, "leaktrack_test.Reported")
	assert.Contains(t, report, "2 live")

	Untrack(a)
	Untrack(b)
	assert.Empty(t, Report())
}

func TestTrackWithUUIDFillsHintWhenEmpty(t *testing.T) {
	Reset()
	SetEnabled(true)
	defer SetEnabled(true)

	id := registry.MustRegister("leaktrack_test.Hinted", func(node any) (registry.Identifiable, error) { return nil, nil })
	obj := new(int)
	TrackWithUUID(obj, id, "")
	assert.Equal(t, 1, Count())
	Untrack(obj)
}
