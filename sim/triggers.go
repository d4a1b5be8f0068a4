package sim

import "github.com/rustyeddy/sentinel/market"

func hitStopLoss(p *Position, close float64) bool {
	if p.Side == market.Buy {
		return close <= p.StopLoss
	}
	return close >= p.StopLoss
}

func hitTakeProfit(p *Position, close float64) bool {
	if p.Side == market.Buy {
		return close >= p.TakeProfit
	}
	return close <= p.TakeProfit
}

// trendInvalidated cuts a position before its stop when price has pushed a
// full buffer beyond the fast MA and the classified trend has flipped
// against it. The buffer is five spreads, so noise inside normal spread
// widths never triggers it.
func trendInvalidated(p *Position, c market.Candle, trend market.TrendStatus, spread float64) bool {
	buffer := 5 * spread
	if p.Side == market.Buy {
		return c.Close < c.MAFast-buffer && trend == market.TrendDown
	}
	return c.Close > c.MAFast+buffer && trend == market.TrendUp
}
