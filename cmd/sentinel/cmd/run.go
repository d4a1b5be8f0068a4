package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/sentinel/advisor"
	"github.com/rustyeddy/sentinel/config"
	"github.com/rustyeddy/sentinel/journal"
	"github.com/rustyeddy/sentinel/metrics"
	"github.com/rustyeddy/sentinel/pkg/logger"
	"github.com/rustyeddy/sentinel/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulator from a config file",
	Long: `Run the trading simulator using settings from a configuration file.

The config file selects the asset, RNG seed, tick count and pacing interval,
plus the journal backend, Prometheus endpoint and advisory model. Without
--config the built-in defaults are used (XAUUSD, 300 ticks, CSV journal).

Example:
  sentinel run --config examples/configs/basic.yaml
  sentinel run --fast`,
	RunE: runRun,
}

var (
	runConfigPath string
	runFast       bool
	runVerbose    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().BoolVar(&runFast, "fast", false, "ignore the pacing interval and tick as fast as possible")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "human-readable log output")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	log, err := logger.New("sentinel", runVerbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	j, err := buildJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	var dispatcher *advisor.Dispatcher
	if cfg.Advisor.Enabled {
		key := os.Getenv(cfg.Advisor.APIKeyEnv)
		dispatcher = advisor.NewDispatcher(advisor.NewGemini(key, cfg.Advisor.Model))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Listen, mux); err != nil {
				log.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
		log.Info("metrics endpoint up", zap.String("listen", cfg.Metrics.Listen))
	}

	engine, err := sim.NewEngine(sim.Config{
		Asset:   cfg.Simulation.Asset,
		Balance: cfg.Account.Balance,
		Seed:    cfg.Simulation.Seed,
		Journal: j,
		Advisor: dispatcher,
		Metrics: m,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	interval, _ := cfg.Simulation.ParseInterval()
	if runFast {
		interval = 0
	}

	fmt.Printf("Running %d ticks on %s (seed %d, balance $%.2f)\n\n",
		cfg.Simulation.Ticks, cfg.Simulation.Asset, cfg.Simulation.Seed, cfg.Account.Balance)

	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	var advisory string
	for i := 0; i < cfg.Simulation.Ticks; i++ {
		if ticker != nil {
			<-ticker.C
		}

		res := engine.Tick()
		for _, ev := range res.Events {
			fmt.Printf("[%s] %-8s %s\n", ev.Time.Format("15:04:05"), ev.Severity, ev.Message)
		}

		if dispatcher != nil {
			if latest := dispatcher.Latest(); latest != "" && latest != advisory {
				advisory = latest
				fmt.Printf("[%s] %-8s %s\n", res.Candle.Time.Format("15:04:05"), sim.SeverityAdvisory, advisory)
			}
		}
	}

	acct := engine.Account()
	fmt.Printf("\nFinal Results:\n")
	fmt.Printf("  Balance: $%.2f\n", acct.Balance)
	fmt.Printf("  Equity: $%.2f\n", acct.Equity)
	fmt.Printf("  Profit/Loss: $%.2f\n", acct.Equity-cfg.Account.Balance)
	if pos := engine.PositionSnapshot(); pos != nil {
		fmt.Printf("  Open Position: %s %s @ %.2f (PnL %.2f)\n", pos.Side, pos.Asset, pos.EntryPrice, pos.PnL)
	}

	switch cfg.Journal.Type {
	case "csv":
		fmt.Printf("\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.TradesFile, cfg.Journal.EquityFile)
	case "sqlite":
		fmt.Printf("\nResults saved to: %s\n", cfg.Journal.DBPath)
	}

	return nil
}

func buildJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.TradesFile, cfg.EquityFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	default:
		return journal.Noop{}, nil
	}
}
