package repository

import "sort"

// DaySeries stores one float value per day, ordered by day. Writing an
// existing day replaces its value, so the latest write wins. Input files
// usually arrive day-ordered, which makes inserts plain appends.
type DaySeries struct {
	days []int64
	vals []float64
}

// Put inserts or replaces the value for a day.
func (s *DaySeries) Put(day int64, v float64) {
	if n := len(s.days); n == 0 || day > s.days[n-1] {
		s.days = append(s.days, day)
		s.vals = append(s.vals, v)
		return
	}
	i := sort.Search(len(s.days), func(i int) bool { return s.days[i] >= day })
	if i < len(s.days) && s.days[i] == day {
		s.vals[i] = v
		return
	}
	s.days = append(s.days, 0)
	s.vals = append(s.vals, 0)
	copy(s.days[i+1:], s.days[i:])
	copy(s.vals[i+1:], s.vals[i:])
	s.days[i] = day
	s.vals[i] = v
}

// Len reports the number of distinct days.
func (s *DaySeries) Len() int { return len(s.days) }

// RangeAscend visits every (day, value) pair with from <= day <= to in
// ascending day order, stopping early when fn returns false.
func (s *DaySeries) RangeAscend(from, to int64, fn func(day int64, v float64) bool) {
	i := sort.Search(len(s.days), func(i int) bool { return s.days[i] >= from })
	for ; i < len(s.days) && s.days[i] <= to; i++ {
		if !fn(s.days[i], s.vals[i]) {
			return
		}
	}
}
