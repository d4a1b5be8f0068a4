package market

// TrendStatus labels the market direction derived from a single candle's
// close against its moving averages.
type TrendStatus string

const (
	TrendUp       TrendStatus = "UP"
	TrendDown     TrendStatus = "DOWN"
	TrendSideways TrendStatus = "SIDEWAYS"
)

// Classify maps (close, maFast, maSlow) to a trend label. It is a pure
// function: an up trend needs the fast MA above the slow MA and the close
// above the fast MA; down mirrors; everything else is sideways.
func Classify(close, maFast, maSlow float64) TrendStatus {
	if maFast > maSlow && close > maFast {
		return TrendUp
	}
	if maFast < maSlow && close < maFast {
		return TrendDown
	}
	return TrendSideways
}
