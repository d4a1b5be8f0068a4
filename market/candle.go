package market

import "time"

// Candle is one synthetic OHLC bar with its indicator values attached.
// Candles are immutable once produced by the engine.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	MAFast float64 // SMA over the last 7 closes
	MASlow float64 // SMA over the last 25 closes
	RSI    float64 // RSI(14), always in [0,100]
}

// Range returns the high-low span of the candle.
func (c Candle) Range() float64 {
	return c.High - c.Low
}
