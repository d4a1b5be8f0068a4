package strategies

import "github.com/rustyeddy/sentinel/market"

// TrendFollow rides MA crossovers during the London and New York sessions.
// The RSI filter keeps it from chasing a move that is already stretched.
type TrendFollow struct{}

func (TrendFollow) Name() string { return "trend-follow" }

func (TrendFollow) Evaluate(c market.Candle, trend market.TrendStatus) *Signal {
	if c.MAFast > c.MASlow && trend == market.TrendUp && c.RSI < rsiOverbought {
		return &Signal{Side: market.Buy, Reason: "Trend Follow: MA Cross UP"}
	}
	if c.MAFast < c.MASlow && trend == market.TrendDown && c.RSI > rsiOversold {
		return &Signal{Side: market.Sell, Reason: "Trend Follow: MA Cross DOWN"}
	}
	return nil
}
