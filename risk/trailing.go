package risk

import (
	"math"

	"github.com/rustyeddy/sentinel/market"
)

// Step trailing stop: every stepSize of profit distance earns another
// secureStep of locked-in profit measured from the entry. Both scale off the
// asset spread.
const (
	trailStepSpreads   = 20
	trailSecureSpreads = 10
)

// TrailInputs is the open-position state the trailing calculation reads.
type TrailInputs struct {
	Side      market.Side
	Entry     float64
	Close     float64
	StopLoss  float64
	Spread    float64
	StepCount int // trailing steps already taken
}

// TrailResult carries the (possibly unchanged) stop and step count back.
// Moved is true only when the stop actually tightened.
type TrailResult struct {
	StopLoss  float64
	StepCount int
	Moved     bool
}

// Trail ratchets the stop in the profit direction in discrete steps. The
// stop is monotonic: for a buy it never decreases, for a sell it never
// increases. A step count that advanced without improving the stop is not
// recorded, so a later tick re-evaluates the same step.
func Trail(in TrailInputs) TrailResult {
	out := TrailResult{StopLoss: in.StopLoss, StepCount: in.StepCount}

	stepSize := trailStepSpreads * in.Spread
	secureStep := trailSecureSpreads * in.Spread
	if stepSize <= 0 {
		return out
	}

	if in.Side == market.Buy {
		profitDistance := in.Close - in.Entry
		steps := int(math.Floor(profitDistance / stepSize))
		if steps > in.StepCount {
			newSL := in.Entry + float64(steps)*secureStep
			if newSL > in.StopLoss {
				out.StopLoss = newSL
				out.StepCount = steps
				out.Moved = true
			}
		}
		return out
	}

	profitDistance := in.Entry - in.Close
	steps := int(math.Floor(profitDistance / stepSize))
	if steps > in.StepCount {
		newSL := in.Entry - float64(steps)*secureStep
		if newSL < in.StopLoss {
			out.StopLoss = newSL
			out.StepCount = steps
			out.Moved = true
		}
	}
	return out
}
