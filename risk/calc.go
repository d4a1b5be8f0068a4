package risk

import (
	"math"

	"github.com/rustyeddy/sentinel/market"
)

// RewardRiskRatio is the fixed take-profit multiple of the stop distance.
const RewardRiskRatio = 2.0

// StopDistance sizes the initial stop from current volatility: three times
// the candle's high-low range (a cheap ATR proxy), floored at 10 spreads so
// a degenerate doji can't produce a zero-width stop.
func StopDistance(c market.Candle, spread float64) float64 {
	atrProxy := 3 * math.Abs(c.High-c.Low)
	return math.Max(atrProxy, 10*spread)
}

// Levels are the exit prices attached to a new position.
type Levels struct {
	StopLoss   float64
	TakeProfit float64
}

// ExitLevels places the stop one stopDistance against the entry and the
// take-profit RewardRiskRatio stopDistances with it (fixed 1:2 risk:reward).
func ExitLevels(side market.Side, entry, stopDistance float64) Levels {
	if side == market.Buy {
		return Levels{
			StopLoss:   entry - stopDistance,
			TakeProfit: entry + stopDistance*RewardRiskRatio,
		}
	}
	return Levels{
		StopLoss:   entry + stopDistance,
		TakeProfit: entry - stopDistance*RewardRiskRatio,
	}
}

// RR returns the reward:risk ratio of a planned trade, 0 when the stop
// coincides with the entry.
func RR(entry, stop, takeProfit float64) float64 {
	risk := math.Abs(entry - stop)
	if risk == 0 {
		return 0
	}
	return math.Abs(takeProfit-entry) / risk
}
