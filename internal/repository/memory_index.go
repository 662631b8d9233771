package repository

import (
	"sort"

	"FinTab/internal/domain/models"
	domain "FinTab/internal/domain/repository"
)

// MemoryIndex holds the four per-entity lookups built during ingestion:
// asset class, price series, volume series and trades. It is filled on a
// single goroutine by the loader and treated as read-only afterwards.
type MemoryIndex struct {
	classes map[string]string
	prices  map[string]*DaySeries
	volumes map[string]*DaySeries
	trades  map[string][]models.TradeEntry
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		classes: make(map[string]string),
		prices:  make(map[string]*DaySeries),
		volumes: make(map[string]*DaySeries),
		trades:  make(map[string][]models.TradeEntry),
	}
}

// PutClass records the asset class of an entity. A repeated name keeps
// the later class.
func (ix *MemoryIndex) PutClass(name, class string) {
	ix.classes[name] = class
}

// PutPrice records the price of an entity for one day, replacing any
// earlier price for that day.
func (ix *MemoryIndex) PutPrice(name string, day int64, price float64) {
	s := ix.prices[name]
	if s == nil {
		s = &DaySeries{}
		ix.prices[name] = s
	}
	s.Put(day, price)
}

// PutVolume records the traded volume of an entity for one day, replacing
// any earlier volume for that day.
func (ix *MemoryIndex) PutVolume(name string, day int64, volume float64) {
	s := ix.volumes[name]
	if s == nil {
		s = &DaySeries{}
		ix.volumes[name] = s
	}
	s.Put(day, volume)
}

// AddTrade appends one trade to an entity's history, keeping input order.
func (ix *MemoryIndex) AddTrade(name string, e models.TradeEntry) {
	ix.trades[name] = append(ix.trades[name], e)
}

func (ix *MemoryIndex) Class(name string) (string, bool) {
	c, ok := ix.classes[name]
	return c, ok
}

// EntityNames returns every classified entity, ascending by name.
func (ix *MemoryIndex) EntityNames() []string {
	names := make([]string, 0, len(ix.classes))
	for n := range ix.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (ix *MemoryIndex) PriceSeries(name string) (domain.Series, bool) {
	s, ok := ix.prices[name]
	if !ok {
		return nil, false
	}
	return s, true
}

func (ix *MemoryIndex) VolumeSeries(name string) (domain.Series, bool) {
	s, ok := ix.volumes[name]
	if !ok {
		return nil, false
	}
	return s, true
}

func (ix *MemoryIndex) Trades(name string) ([]models.TradeEntry, bool) {
	ts, ok := ix.trades[name]
	return ts, ok
}
