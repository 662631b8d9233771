package models

import (
	"fmt"
	"time"
)

// ClassCount is one row of the asset-class counts result.
type ClassCount struct {
	AssetClass string `json:"asset_class"`
	Count      int64  `json:"count"`
}

// QueryResult is the published/serialized form of one evaluation run.
type QueryResult struct {
	RunID          string       `json:"run_id"`
	Table          string       `json:"table"`
	Rows           []ClassCount `json:"rows"`
	ElapsedSeconds float64      `json:"elapsed_seconds"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// ResultFromTable converts a rendered counts table (STRING class, INT
// count) into its wire payload.
func ResultFromTable(runID string, t *Table, elapsed time.Duration) (*QueryResult, error) {
	if t.ColumnCount() != 2 || t.ColumnKind(0) != KindString || t.ColumnKind(1) != KindInt {
		return nil, fmt.Errorf("table %q is not a counts table", t.Name())
	}
	res := &QueryResult{
		RunID:          runID,
		Table:          t.Name(),
		Rows:           make([]ClassCount, 0, t.RowCount()),
		ElapsedSeconds: elapsed.Seconds(),
		GeneratedAt:    time.Now().UTC(),
	}
	for row := range t.Rows() {
		res.Rows = append(res.Rows, ClassCount{AssetClass: row[0].Text(), Count: row[1].Int()})
	}
	return res, nil
}

// LoadEvent reports one table that finished loading.
type LoadEvent struct {
	Table   string `json:"table"`
	Rows    int    `json:"rows"`
	Indexed bool   `json:"indexed"` // true when the table fed one of the market indexes
}
