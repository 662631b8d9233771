package models

// TradeEntry is one executed trade as held by the trades index. Entries
// keep input order per entity; nothing deduplicates them.
type TradeEntry struct {
	ID       int64
	Day      int64
	Quantity int64
}
