package legacyimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

func TestParseTimestampNumberAcceptsLooseFormats(t *testing.T) {
	n, err := ParseTimestampNumber("2021-03-05T12:00:00Z")
	require.NoError(t, err)
	defer n.Release()
	assert.InDelta(t, 1614945600.0, n.AsFloat64(), 1)
}

func TestParseTimestampNumberRejectsGarbage(t *testing.T) {
	_, err := ParseTimestampNumber("not a date at all")
	assert.Error(t, err)
}

func TestImportCSVBuildsDictionariesAndDerivedTimestamp(t *testing.T) {
	csvData := "name,event_time\nalice,2021-03-05T12:00:00Z\nbob,2021-03-06T00:00:00Z\n"
	rows, err := ImportCSV(strings.NewReader(csvData), "event_time")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	defer func() {
		for _, r := range rows {
			r.Release()
		}
	}()

	name, ok := rows[0].Get("name")
	require.True(t, ok)
	assert.Equal(t, "alice", name.(*value.String).String())

	ts, ok := rows[0].Get("event_time_unix")
	require.True(t, ok)
	assert.InDelta(t, 1614945600.0, ts.(*value.Number).AsFloat64(), 1)
}

func TestImportCSVEmptyInput(t *testing.T) {
	rows, err := ImportCSV(strings.NewReader(""), "event_time")
	require.NoError(t, err)
	assert.Nil(t, rows)
}
