package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/sentinel/market"
)

func TestStopDistance(t *testing.T) {
	t.Parallel()

	// Wide candle: the ATR proxy wins.
	c := market.Candle{High: 105, Low: 100}
	assert.InDelta(t, 15.0, StopDistance(c, 0.2), 1e-9)

	// Degenerate candle: the spread floor wins.
	doji := market.Candle{High: 100, Low: 100}
	assert.InDelta(t, 2.0, StopDistance(doji, 0.2), 1e-9)
}

func TestExitLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		side   market.Side
		entry  float64
		dist   float64
		stop   float64
		target float64
	}{
		{"buy", market.Buy, 100, 5, 95, 110},
		{"sell", market.Sell, 100, 5, 105, 90},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lv := ExitLevels(tt.side, tt.entry, tt.dist)
			assert.InDelta(t, tt.stop, lv.StopLoss, 1e-9)
			assert.InDelta(t, tt.target, lv.TakeProfit, 1e-9)

			// Fixed 1:2 risk:reward on both sides.
			assert.InDelta(t, RewardRiskRatio, RR(tt.entry, lv.StopLoss, lv.TakeProfit), 1e-9)
		})
	}
}

func TestRRZeroRisk(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, RR(100, 100, 110))
}
