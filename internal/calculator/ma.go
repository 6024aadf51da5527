package calculator

// Standard lookback windows for the momentum signal.
const (
	MA50Period  = 50
	MA200Period = 200
)

// SMA computes the simple moving average over the trailing period.
// ok is false when the series is too short — a defined missing-data
// condition, not an error.
func SMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(period), true
}

// MA50 returns the 50-day simple moving average of the closes.
func MA50(closes []float64) (float64, bool) {
	return SMA(closes, MA50Period)
}

// MA200 returns the 200-day simple moving average of the closes.
func MA200(closes []float64) (float64, bool) {
	return SMA(closes, MA200Period)
}
