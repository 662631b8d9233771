package repository

import (
	"testing"

	"FinTab/internal/domain/models"
)

func TestMemoryIndexClassLastWriteWins(t *testing.T) {
	ix := NewMemoryIndex()
	ix.PutClass("acme", "stock")
	ix.PutClass("acme", "bond")
	c, ok := ix.Class("acme")
	if !ok || c != "bond" {
		t.Fatalf("got %q, %v", c, ok)
	}
}

func TestMemoryIndexEntityNamesSorted(t *testing.T) {
	ix := NewMemoryIndex()
	for _, n := range []string{"zeta", "acme", "mid"} {
		ix.PutClass(n, "stock")
	}
	names := ix.EntityNames()
	if len(names) != 3 || names[0] != "acme" || names[1] != "mid" || names[2] != "zeta" {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestMemoryIndexSeriesLookup(t *testing.T) {
	ix := NewMemoryIndex()
	ix.PutPrice("acme", 13, 100.5)
	ix.PutPrice("acme", 14, 101.5)
	ix.PutVolume("acme", 13, 9.0)

	ps, ok := ix.PriceSeries("acme")
	if !ok || ps.Len() != 2 {
		t.Fatalf("price series missing")
	}
	if _, ok := ix.PriceSeries("ghost"); ok {
		t.Fatalf("unexpected series for unknown name")
	}
	vs, ok := ix.VolumeSeries("acme")
	if !ok || vs.Len() != 1 {
		t.Fatalf("volume series missing")
	}
}

func TestMemoryIndexTradesKeepInputOrder(t *testing.T) {
	ix := NewMemoryIndex()
	ix.AddTrade("acme", models.TradeEntry{ID: 7, Day: 20, Quantity: 100})
	ix.AddTrade("acme", models.TradeEntry{ID: 3, Day: 10, Quantity: 50})
	ts, ok := ix.Trades("acme")
	if !ok || len(ts) != 2 {
		t.Fatalf("trades missing")
	}
	if ts[0].ID != 7 || ts[1].ID != 3 {
		t.Fatalf("order changed: %v", ts)
	}
	if _, ok := ix.Trades("ghost"); ok {
		t.Fatalf("unexpected trades for unknown name")
	}
}
