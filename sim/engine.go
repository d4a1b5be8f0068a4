// Package sim is the simulation driver: it owns all per-asset state and runs
// one synchronous tick at a time through candle generation, trend
// classification, risk management and entry-signal evaluation. There is no
// intra-tick concurrency; the only asynchronous collaborator is the advisory
// dispatcher, which is fire-and-forget and display-only.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/sentinel/advisor"
	"github.com/rustyeddy/sentinel/journal"
	"github.com/rustyeddy/sentinel/market"
	"github.com/rustyeddy/sentinel/metrics"
	"github.com/rustyeddy/sentinel/pkg/id"
	"github.com/rustyeddy/sentinel/risk"
	"github.com/rustyeddy/sentinel/strategies"
)

// InitialBalance is the account seed when the config leaves it unset.
const InitialBalance = 10000

// advisoryMinHistory is how many candles must exist before a session change
// triggers an advisory request.
const advisoryMinHistory = 20

var (
	ErrUnknownAsset     = errors.New("unknown asset")
	ErrPositionNotFound = errors.New("position not found")
)

// Config wires an engine. Only Asset is required; every collaborator is
// optional and defaults to an inert implementation, so the core is fully
// testable with nothing else around.
type Config struct {
	Asset   string
	Balance float64
	Seed    int64 // RNG seed; identical seeds reproduce identical candle sequences

	Journal journal.Journal
	Advisor *advisor.Dispatcher
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	Now     func() time.Time
}

// Account is the per-tick account snapshot. Balance only moves on position
// close; Equity adds the open position's PnL.
type Account struct {
	Balance float64
	Equity  float64
}

// TickResult is everything one tick produced, for display collaborators.
type TickResult struct {
	Candle   market.Candle
	Trend    market.TrendStatus
	Session  market.Session
	Account  Account
	Position *Position // snapshot copy; nil when flat
	Events   []Event   // events emitted during this tick only
}

type Engine struct {
	asset   string
	assets  map[string]*assetState
	history *market.History

	balance float64
	equity  float64
	pos     *Position

	ticks   int
	session market.Session
	trend   market.TrendStatus

	rng     *rand.Rand
	events  *eventLog
	emitted []Event

	journal journal.Journal
	advisor *advisor.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Asset == "" {
		cfg.Asset = "XAUUSD"
	}
	if _, ok := market.Assets[cfg.Asset]; !ok {
		return nil, fmt.Errorf("new engine: %w: %s", ErrUnknownAsset, cfg.Asset)
	}
	if cfg.Balance <= 0 {
		cfg.Balance = InitialBalance
	}
	if cfg.Journal == nil {
		cfg.Journal = journal.Noop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Engine{
		asset:   cfg.Asset,
		assets:  make(map[string]*assetState),
		history: market.NewHistory(market.HistoryCap),
		balance: cfg.Balance,
		equity:  cfg.Balance,
		session: market.SessionAsian,
		trend:   market.TrendSideways,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		events:  newEventLog(EventCap),
		journal: cfg.Journal,
		advisor: cfg.Advisor,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
		now:     cfg.Now,
	}, nil
}

// Tick advances the simulation by one candle: session clock → candle
// generation → trend classification → risk management → entry strategy →
// equity mark. Every tick completes and returns a result; there are no
// fatal conditions inside the core.
func (e *Engine) Tick() TickResult {
	now := e.now()
	e.ticks++
	e.emitted = e.emitted[:0]

	session := market.SessionFor(e.ticks)
	if session != e.session {
		e.onSessionChange(session)
	}

	meta := market.Assets[e.asset]
	c := e.generateCandle(meta, session.VolatilityMultiplier(), session.Bias(now), now)
	e.history.Append(c)

	trend := market.Classify(c.Close, c.MAFast, c.MASlow)
	e.trend = trend

	e.managePosition(c, trend, meta)

	if e.pos == nil {
		e.tryEnter(c, trend, session, meta, now)
	}

	e.equity = e.balance
	if e.pos != nil {
		e.equity += e.pos.PnL
	}

	if e.metrics != nil {
		e.metrics.TicksTotal.Inc()
		e.metrics.Balance.Set(e.balance)
		e.metrics.Equity.Set(e.equity)
	}
	if err := e.journal.RecordEquity(journal.EquitySnapshot{Time: now, Balance: e.balance, Equity: e.equity}); err != nil {
		e.log.Warn("record equity", zap.Error(err))
	}

	res := TickResult{
		Candle:  c,
		Trend:   trend,
		Session: session,
		Account: Account{Balance: e.balance, Equity: e.equity},
		Events:  append([]Event(nil), e.emitted...),
	}
	if e.pos != nil {
		snap := *e.pos
		res.Position = &snap
	}
	return res
}

// onSessionChange records the regime flip and, once enough history exists,
// fires the advisory collaborator. The dispatch never blocks the tick.
func (e *Engine) onSessionChange(session market.Session) {
	prev := e.session
	e.session = session

	e.emit(SeverityInfo, fmt.Sprintf("Session Change Detected: %s", session))
	e.log.Info("session change",
		zap.String("from", string(prev)),
		zap.String("to", string(session)),
	)

	if e.advisor == nil || e.history.Len() < advisoryMinHistory {
		return
	}

	last, _ := e.history.Last()
	e.advisor.Dispatch(advisor.Request{
		Asset:   e.asset,
		Price:   last.Close,
		Trend:   e.trend,
		RSI:     last.RSI,
		Candles: e.history.LastN(5),
	})
}

// managePosition is the per-tick risk pass over the open position: mark,
// static SL/TP check, trend-invalidation check (which overrides a static
// reason from the same tick), trailing adjustment, close execution.
func (e *Engine) managePosition(c market.Candle, trend market.TrendStatus, meta market.AssetMeta) {
	p := e.pos
	if p == nil || !p.Open {
		return
	}

	p.mark(c.Close)

	reason := ""
	if hitStopLoss(p, c.Close) {
		reason = "SL Hit"
	}
	if hitTakeProfit(p, c.Close) {
		reason = "TP Hit"
	}
	if trendInvalidated(p, c, trend, meta.Spread) {
		reason = "Trend Invalidated (Early Exit)"
	}

	// The trailing stop still runs on the tick the position closes. The
	// adjustment is superseded by the close, but the step count it records
	// is the one visible in the close snapshot, so the order matters.
	tr := risk.Trail(risk.TrailInputs{
		Side:      p.Side,
		Entry:     p.EntryPrice,
		Close:     c.Close,
		StopLoss:  p.StopLoss,
		Spread:    meta.Spread,
		StepCount: p.TrailingStepCount,
	})
	if tr.Moved {
		p.StopLoss = tr.StopLoss
		p.TrailingStepCount = tr.StepCount
		e.emit(SeveritySuccess, fmt.Sprintf("Trailing Stop Activated: Locked profit at %.2f", tr.StopLoss))
		e.log.Info("trailing stop moved",
			zap.String("position", p.ID),
			zap.Float64("stop_loss", tr.StopLoss),
			zap.Int("steps", tr.StepCount),
		)
	}

	if reason != "" {
		e.closePosition(p, c.Time, reason)
	}
}

// closePosition realizes the position's PnL into the balance exactly once
// and drops it from the active set. All close paths (stop, target,
// invalidation, manual override) run through here.
func (e *Engine) closePosition(p *Position, at time.Time, reason string) {
	p.Open = false
	e.balance += p.PnL

	sev := SeverityWarning
	if p.PnL > 0 {
		sev = SeveritySuccess
	}
	e.emit(sev, fmt.Sprintf("Position Closed [%s]: PnL %.2f", reason, p.PnL))
	e.log.Info("position closed",
		zap.String("position", p.ID),
		zap.String("reason", reason),
		zap.Float64("pnl", p.PnL),
		zap.Float64("balance", e.balance),
	)

	if err := e.journal.RecordTrade(journal.TradeRecord{
		PositionID:  p.ID,
		Asset:       p.Asset,
		Side:        string(p.Side),
		Size:        p.Size,
		EntryPrice:  p.EntryPrice,
		ExitPrice:   p.CurrentPrice,
		OpenTime:    p.OpenedAt,
		CloseTime:   at,
		RealizedPnL: p.PnL,
		Reason:      reason,
	}); err != nil {
		e.log.Warn("record trade", zap.Error(err))
	}

	if e.metrics != nil {
		e.metrics.PositionsClosed.Inc()
	}

	e.pos = nil
}

// tryEnter asks the session's strategy for a signal and opens the position.
// Runs only while flat: at most one position exists at any time.
func (e *Engine) tryEnter(c market.Candle, trend market.TrendStatus, session market.Session, meta market.AssetMeta, now time.Time) {
	sig := strategies.ForSession(session).Evaluate(c, trend)
	if sig == nil {
		return
	}

	dist := risk.StopDistance(c, meta.Spread)
	levels := risk.ExitLevels(sig.Side, c.Close, dist)

	e.pos = &Position{
		ID:           id.New(),
		Asset:        e.asset,
		Side:         sig.Side,
		EntryPrice:   c.Close,
		Size:         1,
		StopLoss:     levels.StopLoss,
		TakeProfit:   levels.TakeProfit,
		CurrentPrice: c.Close,
		Open:         true,
		OpenedAt:     now,
	}

	e.emit(SeverityInfo, fmt.Sprintf("Opening %s: %s @ %.2f", sig.Side, sig.Reason, c.Close))
	e.log.Info("position opened",
		zap.String("position", e.pos.ID),
		zap.String("side", string(sig.Side)),
		zap.String("reason", sig.Reason),
		zap.Float64("entry", c.Close),
		zap.Float64("stop_loss", levels.StopLoss),
		zap.Float64("take_profit", levels.TakeProfit),
	)

	if e.metrics != nil {
		e.metrics.PositionsOpened.Inc()
	}
}

// CloseManual realizes the currently open position by id, equivalent to a
// risk-manager close with reason "Manual Override". Closing an id that is
// not the open position is rejected; a position already closed no longer
// exists, so a second attempt on the same id fails the same way.
func (e *Engine) CloseManual(positionID string) error {
	if e.pos == nil || e.pos.ID != positionID {
		return fmt.Errorf("close position %q: %w", positionID, ErrPositionNotFound)
	}

	e.closePosition(e.pos, e.now(), "Manual Override")
	e.equity = e.balance
	return nil
}

// SwitchAsset changes the active instrument. The candle history is cleared
// and any open position is discarded unrealized; the target asset's warm
// last-price/momentum state is deliberately carried over, and the balance is
// untouched. An unknown asset is a caller error and mutates nothing.
func (e *Engine) SwitchAsset(asset string) error {
	if _, ok := market.Assets[asset]; !ok {
		return fmt.Errorf("switch asset %q: %w", asset, ErrUnknownAsset)
	}

	e.pos = nil
	e.history.Clear()
	e.asset = asset
	e.equity = e.balance

	e.emit(SeverityInfo, fmt.Sprintf("Switched Asset to %s", asset))
	e.log.Info("asset switched", zap.String("asset", asset))
	return nil
}

func (e *Engine) emit(sev Severity, msg string) {
	ev := Event{Time: e.now(), Message: msg, Severity: sev}
	e.events.append(ev)
	e.emitted = append(e.emitted, ev)
}

// Asset returns the active instrument identifier.
func (e *Engine) Asset() string { return e.asset }

// Ticks returns how many ticks have been processed.
func (e *Engine) Ticks() int { return e.ticks }

// Session returns the current session regime.
func (e *Engine) Session() market.Session { return e.session }

// Trend returns the trend classified on the latest tick.
func (e *Engine) Trend() market.TrendStatus { return e.trend }

// Account returns the current balance/equity snapshot.
func (e *Engine) Account() Account {
	return Account{Balance: e.balance, Equity: e.equity}
}

// PositionSnapshot returns a copy of the open position, nil when flat.
func (e *Engine) PositionSnapshot() *Position {
	if e.pos == nil {
		return nil
	}
	snap := *e.pos
	return &snap
}

// History returns a copy of the candle window, oldest first.
func (e *Engine) History() []market.Candle {
	return e.history.Candles()
}

// Events returns a copy of the retained event log, oldest first.
func (e *Engine) Events() []Event {
	return e.events.snapshot()
}
