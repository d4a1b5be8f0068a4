package market

// HistoryCap is how many candles the simulator keeps per asset.
const HistoryCap = 60

// History is a bounded window over the most recent candles. Once the cap is
// reached the oldest candle is evicted on append. It is only ever touched
// from the single-threaded tick path, so it carries no locking.
type History struct {
	limit   int
	candles []Candle
}

// NewHistory returns an empty history bounded to limit candles.
// A non-positive limit falls back to HistoryCap.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryCap
	}
	return &History{
		limit:   limit,
		candles: make([]Candle, 0, limit),
	}
}

func (h *History) Append(c Candle) {
	h.candles = append(h.candles, c)
	if len(h.candles) > h.limit {
		h.candles = h.candles[1:]
	}
}

func (h *History) Len() int {
	return len(h.candles)
}

// Last returns the most recent candle, if any.
func (h *History) Last() (Candle, bool) {
	if len(h.candles) == 0 {
		return Candle{}, false
	}
	return h.candles[len(h.candles)-1], true
}

// Candles returns a copy of the window, oldest first.
func (h *History) Candles() []Candle {
	out := make([]Candle, len(h.candles))
	copy(out, h.candles)
	return out
}

// LastN returns a copy of up to the n most recent candles, oldest first.
func (h *History) LastN(n int) []Candle {
	if n > len(h.candles) {
		n = len(h.candles)
	}
	out := make([]Candle, n)
	copy(out, h.candles[len(h.candles)-n:])
	return out
}

// Closes returns the close sequence of the window, oldest first.
func (h *History) Closes() []float64 {
	out := make([]float64, len(h.candles))
	for i, c := range h.candles {
		out[i] = c.Close
	}
	return out
}

func (h *History) Clear() {
	h.candles = h.candles[:0]
}
