// Package advisor is the optional market-commentary collaborator. The engine
// invokes it fire-and-forget on session-regime changes; its output is
// display-only and never feeds back into trading decisions. Everything here
// degrades silently: a failed or missing advisor produces a fixed fallback
// string, never an error surfaced to the tick path.
package advisor

import (
	"context"

	"github.com/rustyeddy/sentinel/market"
)

// Request is the market snapshot handed to the advisor.
type Request struct {
	Asset   string
	Price   float64
	Trend   market.TrendStatus
	RSI     float64
	Candles []market.Candle // most recent candles, oldest first
}

// Fallback is displayed when an advisory call fails.
const Fallback = "AI Connection Interrupted. Using internal heuristic fallback."

// failsafe is displayed when no advisor credentials are configured.
const failsafe = "AI System: API Key missing. Running in autonomous fail-safe mode."

type Advisor interface {
	Advise(ctx context.Context, req Request) (string, error)
}

// Noop satisfies Advisor without any external call. The simulator is fully
// functional with it.
type Noop struct{}

func (Noop) Advise(context.Context, Request) (string, error) {
	return failsafe, nil
}
