package journal

import "time"

// TradeRecord is one realized (closed) position.
type TradeRecord struct {
	PositionID  string
	Asset       string
	Side        string
	Size        float64
	EntryPrice  float64
	ExitPrice   float64
	OpenTime    time.Time
	CloseTime   time.Time
	RealizedPnL float64
	Reason      string
}

// EquitySnapshot is the account state after one tick.
type EquitySnapshot struct {
	Time    time.Time
	Balance float64
	Equity  float64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Noop discards every record. The engine uses it when journaling is off,
// which keeps the core testable with no files or databases around.
type Noop struct{}

func (Noop) RecordTrade(TradeRecord) error     { return nil }
func (Noop) RecordEquity(EquitySnapshot) error { return nil }
func (Noop) Close() error                      { return nil }
