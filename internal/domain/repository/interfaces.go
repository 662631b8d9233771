package repository

import (
	"context"

	"FinTab/internal/domain/models"
)

// LineSource acquires one complete tokenized input: every line split on
// commas, in file order. The source is read exactly once per run.
type LineSource interface {
	Fetch(ctx context.Context) ([][]string, error)
	Origin() string // path or URL, for logs
}

// Series is a read view over one day-keyed value series. Days are unique
// and iterated in ascending order.
type Series interface {
	Len() int
	// RangeAscend visits every (day, value) pair with from <= day <= to,
	// ascending, until fn returns false.
	RangeAscend(from, to int64, fn func(day int64, v float64) bool)
}

// MarketIndex is the read side of the four lookup structures built during
// ingestion. Implementations are immutable once loading finishes.
type MarketIndex interface {
	Class(name string) (string, bool)
	EntityNames() []string // ascending
	PriceSeries(name string) (Series, bool)
	VolumeSeries(name string) (Series, bool)
	Trades(name string) ([]models.TradeEntry, bool)
}

// TableCatalog is the read side of the table store.
type TableCatalog interface {
	Table(name string) (*models.Table, bool)
	TableNames() []string // declaration order
}

type Publisher interface {
	PublishResult(ctx context.Context, res *models.QueryResult) error
	PublishLoadEvents(ctx context.Context, events []models.LoadEvent) error
	Close() error
}

type Metrics interface {
	RecordRowsIngested(table string, n int)
	RecordTableLoaded(table string)
	RecordError(kind string)
	RecordQueryRun()
	RecordClassCount(class string, count int64)
	RecordLatency(op string, seconds float64)
}
