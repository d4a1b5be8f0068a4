package strategies

import "github.com/rustyeddy/sentinel/market"

// RSI extremes for the mean-reversion entries.
const (
	rsiOversold   = 30
	rsiOverbought = 70
)

// AsianScalp fades RSI extremes during the low-volatility Asian session.
// An extreme reading alone is not enough: a reversion is vetoed when the
// trend still points the losing way.
type AsianScalp struct{}

func (AsianScalp) Name() string { return "asian-scalp" }

func (AsianScalp) Evaluate(c market.Candle, trend market.TrendStatus) *Signal {
	if c.RSI < rsiOversold && trend != market.TrendDown {
		return &Signal{Side: market.Buy, Reason: "Asian Scalp: RSI Oversold"}
	}
	if c.RSI > rsiOverbought && trend != market.TrendUp {
		return &Signal{Side: market.Sell, Reason: "Asian Scalp: RSI Overbought"}
	}
	return nil
}
