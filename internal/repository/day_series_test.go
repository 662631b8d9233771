package repository

import "testing"

func collect(s *DaySeries, from, to int64) (days []int64, vals []float64) {
	s.RangeAscend(from, to, func(day int64, v float64) bool {
		days = append(days, day)
		vals = append(vals, v)
		return true
	})
	return days, vals
}

func TestDaySeriesKeepsDayOrder(t *testing.T) {
	s := &DaySeries{}
	for _, d := range []int64{50, 10, 30, 20, 40} {
		s.Put(d, float64(d))
	}
	days, _ := collect(s, 0, 100)
	want := []int64{10, 20, 30, 40, 50}
	if len(days) != len(want) {
		t.Fatalf("got %v", days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("got %v", days)
		}
	}
}

func TestDaySeriesLastWriteWins(t *testing.T) {
	s := &DaySeries{}
	s.Put(13, 100)
	s.Put(14, 200)
	s.Put(13, 300)
	if s.Len() != 2 {
		t.Fatalf("expected 2 days, got %d", s.Len())
	}
	_, vals := collect(s, 13, 13)
	if len(vals) != 1 || vals[0] != 300 {
		t.Fatalf("expected later value, got %v", vals)
	}
}

func TestDaySeriesRangeBoundsAreInclusive(t *testing.T) {
	s := &DaySeries{}
	for _, d := range []int64{12, 13, 200, 268, 269} {
		s.Put(d, 1)
	}
	days, _ := collect(s, 13, 268)
	if len(days) != 3 || days[0] != 13 || days[2] != 268 {
		t.Fatalf("unexpected window %v", days)
	}
}

func TestDaySeriesRangeOutsideData(t *testing.T) {
	s := &DaySeries{}
	s.Put(12, 1)
	s.Put(269, 2)
	days, _ := collect(s, 13, 268)
	if len(days) != 0 {
		t.Fatalf("expected empty window, got %v", days)
	}
}

func TestDaySeriesRangeEarlyStop(t *testing.T) {
	s := &DaySeries{}
	for d := int64(1); d <= 10; d++ {
		s.Put(d, float64(d))
	}
	var seen int
	s.RangeAscend(1, 10, func(day int64, v float64) bool {
		seen++
		return day < 3
	})
	if seen != 3 {
		t.Fatalf("expected stop after day 3, saw %d", seen)
	}
}
