package entity

import "sort"

// HourlyHits maps an hour of day (0-23) to the number of hits in that hour
type HourlyHits map[int]int

// Hours returns the hours with at least one hit in ascending order
func (h HourlyHits) Hours() []int {
	hours := make([]int, 0, len(h))
	for hour, count := range h {
		if count > 0 {
			hours = append(hours, hour)
		}
	}
	sort.Ints(hours)
	return hours
}

func (h HourlyHits) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Stats holds everything accumulated over one pass of the access log
type Stats struct {
	TotalHits int
	ImageHits int
	Browsers  *Counter
	Hourly    HourlyHits
}

func NewStats() *Stats {
	return &Stats{
		Browsers: NewCounter(),
		Hourly:   make(HourlyHits),
	}
}

// ImagePercentage returns the share of image hits in percent. ok is false when there were no hits.
func (s *Stats) ImagePercentage() (float64, bool) {
	if s.TotalHits == 0 {
		return 0, false
	}
	return float64(s.ImageHits) / float64(s.TotalHits) * 100, true
}
