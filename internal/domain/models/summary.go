package models

// SeriesStats summarizes one day-keyed series over a closed day window.
type SeriesStats struct {
	Points int     `json:"points"` // observations inside the window
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// EntitySummary is the per-asset view served by the summary endpoint.
// Price and Volume are nil when no observations of that kind fall inside
// the requested window.
type EntitySummary struct {
	Name          string       `json:"name"`
	AssetClass    string       `json:"asset_class"`
	FromDay       int64        `json:"from_day"`
	ToDay         int64        `json:"to_day"`
	Price         *SeriesStats `json:"price,omitempty"`
	Volume        *SeriesStats `json:"volume,omitempty"`
	TradeCount    int          `json:"trade_count"`
	TotalQuantity int64        `json:"total_quantity"`
}
