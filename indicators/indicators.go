// Package indicators provides the technical indicators the simulator
// attaches to every candle. All functions are pure and deterministic.
package indicators

// Windows used by the engine when annotating candles.
const (
	FastMAWindow = 7
	SlowMAWindow = 25
	RSIPeriod    = 14
)

// MovingAverage returns the simple moving average of the last window closes.
// With fewer than window samples it returns the latest close: during the
// bootstrap phase the average degrades to the price itself rather than
// failing.
func MovingAverage(closes []float64, window int) float64 {
	if len(closes) == 0 || window <= 0 {
		return 0
	}
	if len(closes) < window {
		return closes[len(closes)-1]
	}

	sum := 0.0
	for _, c := range closes[len(closes)-window:] {
		sum += c
	}
	return sum / float64(window)
}

// RSI computes the Relative Strength Index over the last period consecutive
// differences. The result is always in [0,100]:
//   - fewer than period+1 closes → 50 (neutral, insufficient data)
//   - zero average loss → 100 (divide-by-zero guard)
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
