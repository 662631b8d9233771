package usecase

import (
	"bytes"
	"reflect"
	"testing"

	"FinTab/internal/domain/models"
	"FinTab/internal/repository"
)

// resultRows flattens the counts table for comparison.
func resultRows(t *testing.T, table *models.Table) [][2]interface{} {
	t.Helper()
	if table.Name() != "asset-class_counts" {
		t.Fatalf("table name = %q", table.Name())
	}
	if table.ColumnCount() != 2 ||
		table.ColumnName(0) != "asset-class" || table.ColumnKind(0) != models.KindString ||
		table.ColumnName(1) != "count" || table.ColumnKind(1) != models.KindInt {
		t.Fatalf("unexpected result schema")
	}
	var rows [][2]interface{}
	for r := range table.Rows() {
		rows = append(rows, [2]interface{}{r[0].Text(), r[1].Int()})
	}
	return rows
}

func addTrades(ix *repository.MemoryIndex, name string, n int) {
	for i := 0; i < n; i++ {
		ix.AddTrade(name, models.TradeEntry{ID: int64(i + 1), Day: 20, Quantity: 10})
	}
}

func TestEvaluateAggregatesByClass(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 20, 120.0)
	ix.PutPrice("acme", 30, 250.0)
	addTrades(ix, "acme", 3)
	ix.PutClass("tbill", "bond")
	ix.PutVolume("tbill", 40, 500.0)
	addTrades(ix, "tbill", 2)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()

	want := [][2]interface{}{{"bond", int64(2)}, {"stock", int64(3)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateOmitsZeroCountClasses(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 20, 120.0)
	addTrades(ix, "acme", 4)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()

	want := [][2]interface{}{{"stock", int64(4)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateEmptyIndex(t *testing.T) {
	table := NewCountsEvaluator(repository.NewMemoryIndex(), nopMetrics{}).Evaluate()
	if rows := resultRows(t, table); len(rows) != 0 {
		t.Fatalf("rows = %v, want empty", rows)
	}
}

func TestEvaluateSkipsUntraded(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("ghost", "stock")
	ix.PutPrice("ghost", 20, 100.0) // qualifying but never traded
	ix.PutClass("real", "stock")
	ix.PutPrice("real", 20, 100.0)
	addTrades(ix, "real", 2)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()

	want := [][2]interface{}{{"stock", int64(2)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateSkipsOtherClasses(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("fund", "etf")
	ix.PutPrice("fund", 20, 100.0)
	addTrades(ix, "fund", 9)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	if rows := resultRows(t, table); len(rows) != 0 {
		t.Fatalf("rows = %v, want empty", rows)
	}
}

func TestEvaluatePriceWindowBounds(t *testing.T) {
	// Points only at days 12 and 269 sit outside the closed window
	// [13, 268]; their values must never be inspected.
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 12, 5000.0)
	ix.PutPrice("acme", 269, 5000.0)
	addTrades(ix, "acme", 1)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	want := [][2]interface{}{{"stock", int64(1)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluatePriceWindowEdgesInclusive(t *testing.T) {
	for _, day := range []int64{13, 268} {
		ix := repository.NewMemoryIndex()
		ix.PutClass("acme", "stock")
		ix.PutPrice("acme", day, 300.0) // above cap, inside window
		addTrades(ix, "acme", 1)

		table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
		if rows := resultRows(t, table); len(rows) != 0 {
			t.Fatalf("day %d: rows = %v, want empty", day, rows)
		}
	}
}

func TestEvaluatePriceCapIsExclusiveAbove(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("at-cap", "stock")
	ix.PutPrice("at-cap", 20, 299.0) // exactly at cap stays eligible
	addTrades(ix, "at-cap", 2)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	want := [][2]interface{}{{"stock", int64(2)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateVolumeFallback(t *testing.T) {
	// Price disqualifies, volume qualifies: counted through the second test.
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 20, 300.5)
	ix.PutVolume("acme", 20, 10.0) // exactly at floor stays eligible
	addTrades(ix, "acme", 3)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	want := [][2]interface{}{{"stock", int64(3)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateVolumeFloorDisqualifies(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 20, 300.5)
	ix.PutVolume("acme", 25, 9.5)
	addTrades(ix, "acme", 3)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	if rows := resultRows(t, table); len(rows) != 0 {
		t.Fatalf("rows = %v, want empty", rows)
	}
}

func TestEvaluateVerdictCarriesToSeriesless(t *testing.T) {
	// "alpha" passes the price test. "beta" has neither series, so the
	// check after the price block still sees alpha's verdict and counts it.
	ix := repository.NewMemoryIndex()
	ix.PutClass("alpha", "stock")
	ix.PutPrice("alpha", 20, 100.0)
	addTrades(ix, "alpha", 3)
	ix.PutClass("beta", "stock")
	addTrades(ix, "beta", 5)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	want := [][2]interface{}{{"stock", int64(8)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateIneligibleVerdictCarriesToSeriesless(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("alpha", "stock")
	ix.PutPrice("alpha", 20, 1000.0) // fails price test, has no volume series
	addTrades(ix, "alpha", 3)
	ix.PutClass("beta", "stock")
	addTrades(ix, "beta", 5) // neither series, inherits alpha's failure

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	if rows := resultRows(t, table); len(rows) != 0 {
		t.Fatalf("rows = %v, want empty", rows)
	}
}

func TestEvaluateSkippedEntitiesDoNotTouchVerdict(t *testing.T) {
	// "fund" would fail the price test but is skipped on class before any
	// series is read, and "ghost" is skipped on missing trades. Neither
	// may disturb the verdict "alpha" left for "zeta".
	ix := repository.NewMemoryIndex()
	ix.PutClass("alpha", "stock")
	ix.PutPrice("alpha", 20, 100.0)
	addTrades(ix, "alpha", 2)
	ix.PutClass("fund", "etf")
	ix.PutPrice("fund", 20, 9000.0)
	addTrades(ix, "fund", 7)
	ix.PutClass("ghost", "stock")
	ix.PutPrice("ghost", 20, 9000.0)
	ix.PutClass("zeta", "stock")
	addTrades(ix, "zeta", 4)

	table := NewCountsEvaluator(ix, nopMetrics{}).Evaluate()
	want := [][2]interface{}{{"stock", int64(6)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("alpha", "stock")
	ix.PutPrice("alpha", 20, 100.0)
	addTrades(ix, "alpha", 3)
	ix.PutClass("beta", "bond")
	addTrades(ix, "beta", 2) // counted only through alpha's carried verdict

	e := NewCountsEvaluator(ix, nopMetrics{})
	first := resultRows(t, e.Evaluate())
	second := resultRows(t, e.Evaluate())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second run differs: %v vs %v", second, first)
	}
	want := [][2]interface{}{{"bond", int64(2)}, {"stock", int64(3)}}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("rows = %v, want %v", first, want)
	}
}

func TestEvaluateTimed(t *testing.T) {
	ix := repository.NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutPrice("acme", 20, 100.0)
	addTrades(ix, "acme", 1)

	e := NewCountsEvaluator(ix, nopMetrics{})
	table, best := e.EvaluateTimed(3)
	if table == nil || best <= 0 {
		t.Fatalf("table = %v, best = %v", table, best)
	}
	want := [][2]interface{}{{"stock", int64(1)}}
	if got := resultRows(t, table); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}

	if tbl, _ := e.EvaluateTimed(0); tbl == nil {
		t.Fatalf("zero runs must still evaluate once")
	}
}

func TestLoadThenEvaluateRendered(t *testing.T) {
	doc := `<TABLE>,tradable
STRING,STRING
name,asset-class
acme,stock
tbill,bond
<TABLE>,price-over-time
INT,STRING,FLOAT
day,name,price
14,acme,100.5
200,acme,298
<TABLE>,volume-over-time
INT,STRING,FLOAT
day,name,volume
14,tbill,55
<TABLE>,trades
INT,INT,STRING,INT
id,day,name,quantity
1,20,acme,300
2,21,acme,150
3,22,acme,75
4,23,tbill,900
5,24,tbill,450
`
	_, index := loadDoc(t, doc)

	table := NewCountsEvaluator(index, nopMetrics{}).Evaluate()

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<TABLE>,asset-class_counts\nSTRING,INT\nasset-class,count\nbond,2\nstock,3\n"
	if buf.String() != want {
		t.Fatalf("rendered = %q, want %q", buf.String(), want)
	}
}
