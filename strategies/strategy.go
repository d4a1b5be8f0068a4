// Package strategies holds the entry-signal strategies the engine runs while
// the book is flat. Which strategy is active follows the session regime.
package strategies

import "github.com/rustyeddy/sentinel/market"

// Signal is an entry decision. Reason is the human-readable trigger that
// ends up in the event log and journal.
type Signal struct {
	Side   market.Side
	Reason string
}

// Strategy evaluates one closed candle plus its classified trend.
// A nil signal means stay flat; strategies never manage open positions.
type Strategy interface {
	Name() string
	Evaluate(c market.Candle, trend market.TrendStatus) *Signal
}

// ForSession returns the strategy variant for a session regime: mean
// reversion during the quiet Asian hours, trend following for London and
// New York.
func ForSession(s market.Session) Strategy {
	if s == market.SessionAsian {
		return AsianScalp{}
	}
	return TrendFollow{}
}
