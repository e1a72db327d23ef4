// Package legacyimport adapts loosely-formatted external data — timestamp
// strings and CSV rows, as seen in legacy log ingestion — into value.Value
// graphs. This is the independent, non-core adapter layer: nothing here
// constrains or is constrained by the core runtime's invariants, it only
// produces values the core already knows how to hold.
package legacyimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/araddon/dateparse"

	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

// ParseTimestampNumber accepts a loosely-formatted date/time string (any
// shape dateparse.ParseAny recognizes) and returns it as a Number holding
// Unix seconds UTC (float64, fractional seconds preserved).
func ParseTimestampNumber(s string) (*value.Number, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, fmt.Errorf("legacyimport: parse timestamp %q: %w", s, err)
	}
	return value.NewFloat64(float64(t.UTC().UnixNano()) / float64(time.Second)), nil
}

// ImportCSV reads a CSV (header row required) and returns one Dictionary per
// data row, each field becoming a String value except tsCol, which is
// additionally parsed into a Number via ParseTimestampNumber and stored
// under "<tsCol>_unix" alongside the raw string.
func ImportCSV(r io.Reader, tsCol string) ([]*value.Dictionary, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("legacyimport: read CSV header: %w", err)
	}

	var rows []*value.Dictionary
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			for _, row := range rows {
				value.Release(row)
			}
			return nil, fmt.Errorf("legacyimport: read CSV row: %w", err)
		}
		row := value.NewMutableDictionary()
		for i, col := range header {
			if i >= len(record) {
				continue
			}
			cell := value.NewString(record[i])
			row.Set(col, cell)
			value.Release(cell)
			if col == tsCol {
				ts, err := ParseTimestampNumber(record[i])
				if err == nil {
					row.Set(tsCol+"_unix", ts)
					value.Release(ts)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
