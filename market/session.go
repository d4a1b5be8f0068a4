package market

import (
	"math"
	"time"
)

// Session is one of three synthetic trading-session regimes. The regime
// decides candle volatility, directional bias and which entry strategy runs.
type Session string

const (
	SessionAsian   Session = "ASIAN"
	SessionLondon  Session = "LONDON"
	SessionNewYork Session = "NEW_YORK"
)

// sessionCycle is the tick period of one full Asian→London→NewYork rotation.
const sessionCycle = 300

// SessionFor maps the simulation tick counter to a session regime:
// 0-100 Asian, 101-200 London, 201+ NewYork, cycling every 300 ticks.
func SessionFor(tick int) Session {
	cycle := tick % sessionCycle
	switch {
	case cycle > 200:
		return SessionNewYork
	case cycle > 100:
		return SessionLondon
	default:
		return SessionAsian
	}
}

// VolatilityMultiplier scales candle movement per regime. Asian hours are
// quiet; London and New York run hot.
func (s Session) VolatilityMultiplier() float64 {
	if s == SessionAsian {
		return 0.5
	}
	return 2.0
}

// Bias returns the session's directional drift in [-1,1], injected into the
// candle generator's momentum. Asian has none; the trending sessions follow
// a slow oscillation of wall time so the drift changes sign over minutes.
func (s Session) Bias(now time.Time) float64 {
	if s == SessionAsian {
		return 0
	}
	return math.Sin(float64(now.UnixMilli()) / 10000)
}
