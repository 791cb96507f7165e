// Package loader converts a raw marketplace export into ordered records.
// The first row supplies field names; every following row becomes one
// record. Parsing is deliberately forgiving: short rows map what they have,
// extra cells are dropped.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"payout/internal/core"
)

// Parse reads a delimiter-separated export and returns its header row and
// records. An export with no data rows is a user-visible failure
// (core.ErrNoRows); the pipeline must not run on it.
func Parse(data []byte) ([]string, []core.Record, error) {
	r := csv.NewReader(bytes.NewReader(stripBOM(data)))
	r.FieldsPerRecord = -1 // allow ragged rows; we map what is present

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read export: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, core.ErrNoRows
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]core.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec := make(core.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, nil, core.ErrNoRows
	}
	return headers, records, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// stripBOM removes a UTF-8 byte order mark; marketplace exports produced on
// Windows often carry one.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
