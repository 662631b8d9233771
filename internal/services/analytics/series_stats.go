// Package analytics computes summary statistics over indexed day series.
package analytics

import (
	"FinTab/internal/domain/models"
	domain "FinTab/internal/domain/repository"
)

// WindowStats aggregates a day series over the inclusive window
// [fromDay, toDay]. Returns nil when the window holds no points.
func WindowStats(s domain.Series, fromDay, toDay int64) *models.SeriesStats {
	var (
		points int
		sum    float64
		min    float64
		max    float64
	)

	s.RangeAscend(fromDay, toDay, func(day int64, v float64) bool {
		if points == 0 {
			min, max = v, v
		} else {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		points++
		sum += v
		return true
	})

	if points == 0 {
		return nil
	}

	return &models.SeriesStats{
		Points: points,
		Min:    min,
		Max:    max,
		Mean:   sum / float64(points),
	}
}
