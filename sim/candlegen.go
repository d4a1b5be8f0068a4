package sim

import (
	"math"
	"time"

	"github.com/rustyeddy/sentinel/indicators"
	"github.com/rustyeddy/sentinel/market"
)

// assetState is the warm per-asset generator state: the last traded price
// and the smoothed momentum. It persists for the life of the engine — an
// asset switch clears the candle history but not this.
type assetState struct {
	lastPrice float64
	momentum  float64
}

// generateCandle draws the next synthetic bar for the active asset: a random
// walk with momentum persistence plus the session's directional bias.
// Indicators are computed over the updated close sequence, so the candle the
// caller appends is already fully annotated.
func (e *Engine) generateCandle(meta market.AssetMeta, volMult, bias float64, now time.Time) market.Candle {
	st := e.state(e.asset)

	noise := e.rng.Float64()*2 - 1

	// Momentum persistence: trends tend to continue.
	st.momentum = st.momentum*0.9 + noise*0.1 + bias*0.05

	change := (st.momentum + noise) * meta.BaseVolatility * volMult

	open := st.lastPrice
	close := open + change
	high := math.Max(open, close) + e.rng.Float64()*0.5*meta.BaseVolatility
	low := math.Min(open, close) - e.rng.Float64()*0.5*meta.BaseVolatility

	st.lastPrice = close

	closes := append(e.history.Closes(), close)

	return market.Candle{
		Time:   now,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		MAFast: indicators.MovingAverage(closes, indicators.FastMAWindow),
		MASlow: indicators.MovingAverage(closes, indicators.SlowMAWindow),
		RSI:    indicators.RSI(closes, indicators.RSIPeriod),
	}
}

// state returns the warm state for an asset, seeding it on first use.
func (e *Engine) state(asset string) *assetState {
	st, ok := e.assets[asset]
	if !ok {
		st = &assetState{lastPrice: market.Assets[asset].SeedPrice}
		e.assets[asset] = st
	}
	return st
}
