package usecase

import (
	"fmt"

	"FinTab/internal/domain/models"
	drepo "FinTab/internal/domain/repository"
	"FinTab/internal/services/analytics"
)

// AssetSummarizer builds per-entity windowed summaries from the index.
type AssetSummarizer struct {
	index drepo.MarketIndex
}

// NewAssetSummarizer creates a new AssetSummarizer instance.
func NewAssetSummarizer(index drepo.MarketIndex) *AssetSummarizer {
	return &AssetSummarizer{index: index}
}

// Summarize aggregates one entity's series and trades over the inclusive
// day window [fromDay, toDay]. Names absent from the class index are an
// error; missing series or trades are normal and leave their fields empty.
func (s *AssetSummarizer) Summarize(name string, fromDay, toDay int64) (*models.EntitySummary, error) {
	class, ok := s.index.Class(name)
	if !ok {
		return nil, fmt.Errorf("unknown asset %q", name)
	}

	sum := &models.EntitySummary{
		Name:       name,
		AssetClass: class,
		FromDay:    fromDay,
		ToDay:      toDay,
	}

	if prices, ok := s.index.PriceSeries(name); ok {
		sum.Price = analytics.WindowStats(prices, fromDay, toDay)
	}
	if volumes, ok := s.index.VolumeSeries(name); ok {
		sum.Volume = analytics.WindowStats(volumes, fromDay, toDay)
	}
	if trades, ok := s.index.Trades(name); ok {
		sum.TradeCount = len(trades)
		for _, t := range trades {
			sum.TotalQuantity += t.Quantity
		}
	}

	return sum, nil
}
