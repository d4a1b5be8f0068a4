// Package metrics exposes Prometheus instrumentation for the simulator.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the simulator's Prometheus collectors.
type Metrics struct {
	TicksTotal      prometheus.Counter
	PositionsOpened prometheus.Counter
	PositionsClosed prometheus.Counter
	Balance         prometheus.Gauge
	Equity          prometheus.Gauge
}

// New registers the simulator collectors on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sentinel",
			Name:      "ticks_total",
			Help:      "Simulation ticks processed.",
		}),
		PositionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sentinel",
			Name:      "positions_opened_total",
			Help:      "Positions opened by the strategy engine.",
		}),
		PositionsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sentinel",
			Name:      "positions_closed_total",
			Help:      "Positions closed (stop, target, invalidation or manual).",
		}),
		Balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sentinel",
			Name:      "account_balance",
			Help:      "Realized account balance.",
		}),
		Equity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sentinel",
			Name:      "account_equity",
			Help:      "Balance plus open-position PnL.",
		}),
	}

	reg.MustRegister(m.TicksTotal, m.PositionsOpened, m.PositionsClosed, m.Balance, m.Equity)
	return m
}
