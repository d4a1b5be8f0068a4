package sim

import (
	"time"

	"github.com/rustyeddy/sentinel/market"
)

// Position is the single open trade of a simulation instance. The engine
// marks it to the close every tick; once closed its final PnL is realized
// into the balance exactly once and the position leaves the active set for
// good.
type Position struct {
	ID                string
	Asset             string
	Side              market.Side
	EntryPrice        float64
	Size              float64
	StopLoss          float64
	TakeProfit        float64
	CurrentPrice      float64
	PnL               float64
	Open              bool
	OpenedAt          time.Time
	TrailingStepCount int
}

// mark revalues the position against the latest close.
func (p *Position) mark(close float64) {
	if p.Side == market.Buy {
		p.PnL = (close - p.EntryPrice) * p.Size
	} else {
		p.PnL = (p.EntryPrice - close) * p.Size
	}
	p.CurrentPrice = close
}
