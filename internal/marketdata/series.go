package marketdata

import "errors"

// ErrShortSeries means a series has too few bars to compute a return over.
var ErrShortSeries = errors.New("series has fewer than two bars")

// PeriodReturn computes the simple return from the first to the last close
// of a date-ordered series.
func PeriodReturn(bars []Bar) (float64, error) {
	if len(bars) < 2 {
		return 0, ErrShortSeries
	}
	first := bars[0].Close
	last := bars[len(bars)-1].Close
	return (last - first) / first, nil
}

// MaxDrawdown computes the largest peak-to-trough decline in a date-ordered
// series, as a positive decimal. A monotonically rising series returns 0.
func MaxDrawdown(bars []Bar) (float64, error) {
	if len(bars) < 2 {
		return 0, ErrShortSeries
	}

	peak := bars[0].Close
	var maxDD float64
	for _, b := range bars[1:] {
		if b.Close > peak {
			peak = b.Close
			continue
		}
		dd := (peak - b.Close) / peak
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD, nil
}
