package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/sentinel/market"
)

func TestHitStopLoss(t *testing.T) {
	t.Parallel()

	buy := &Position{Side: market.Buy, StopLoss: 95}
	assert.True(t, hitStopLoss(buy, 94))
	assert.True(t, hitStopLoss(buy, 95)) // boundary counts
	assert.False(t, hitStopLoss(buy, 96))

	sell := &Position{Side: market.Sell, StopLoss: 105}
	assert.True(t, hitStopLoss(sell, 106))
	assert.True(t, hitStopLoss(sell, 105))
	assert.False(t, hitStopLoss(sell, 104))
}

func TestHitTakeProfit(t *testing.T) {
	t.Parallel()

	buy := &Position{Side: market.Buy, TakeProfit: 110}
	assert.True(t, hitTakeProfit(buy, 111))
	assert.True(t, hitTakeProfit(buy, 110))
	assert.False(t, hitTakeProfit(buy, 109))

	sell := &Position{Side: market.Sell, TakeProfit: 90}
	assert.True(t, hitTakeProfit(sell, 89))
	assert.True(t, hitTakeProfit(sell, 90))
	assert.False(t, hitTakeProfit(sell, 91))
}

func TestTrendInvalidated(t *testing.T) {
	t.Parallel()

	spread := 0.2 // buffer = 1.0
	buy := &Position{Side: market.Buy}

	// Close a full buffer under the fast MA while the trend flipped down.
	c := market.Candle{Close: 94.9, MAFast: 96}
	assert.True(t, trendInvalidated(buy, c, market.TrendDown, spread))

	// Same price but the trend has not flipped: hold.
	assert.False(t, trendInvalidated(buy, c, market.TrendSideways, spread))

	// Trend down but price still inside the buffer: hold.
	inside := market.Candle{Close: 95.5, MAFast: 96}
	assert.False(t, trendInvalidated(buy, inside, market.TrendDown, spread))

	sell := &Position{Side: market.Sell}
	cs := market.Candle{Close: 97.1, MAFast: 96}
	assert.True(t, trendInvalidated(sell, cs, market.TrendUp, spread))
	assert.False(t, trendInvalidated(sell, cs, market.TrendDown, spread))
}
