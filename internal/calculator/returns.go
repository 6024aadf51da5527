package calculator

import (
	"time"

	"PortfolioPulse/internal/model"
)

// YTDReturn returns the percentage change from the first close of the
// current calendar year to the series' current price. ok is false when
// the series has no close in that year, in which case the ticker is
// excluded from portfolio return averages rather than counted as zero.
func YTDReturn(s *model.PriceSeries, now time.Time) (float64, bool) {
	if s == nil || s.CurrentPrice <= 0 {
		return 0, false
	}
	year := now.Year()
	for _, p := range s.Points {
		if p.Date.Year() == year {
			if p.Close <= 0 {
				return 0, false
			}
			return (s.CurrentPrice - p.Close) / p.Close * 100, true
		}
	}
	return 0, false
}

// TrailingChange returns the percentage change over the most recent n
// trading days, i.e. from the close n points back to the latest close.
func TrailingChange(s *model.PriceSeries, n int) (float64, bool) {
	if s == nil || n <= 0 || len(s.Points) < n+1 {
		return 0, false
	}
	base := s.Points[len(s.Points)-1-n].Close
	last := s.Points[len(s.Points)-1].Close
	if base <= 0 {
		return 0, false
	}
	return (last - base) / base * 100, true
}
