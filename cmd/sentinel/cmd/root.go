package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "An autonomous algorithmic trading simulator",
	Long: `Sentinel is a self-contained algorithmic trading simulator written in Go.

It generates a synthetic price feed, computes technical indicators,
classifies the market regime across three synthetic trading sessions,
and trades a single position under fixed risk rules:
  - ATR-proxy stop placement with a fixed 1:2 reward:risk
  - Step-based trailing stop that only ever tightens
  - Early trend-invalidation exits
  - Session-keyed entry strategies (Asian mean reversion, London/NY trend following)

Trades and equity curves are journaled to CSV or SQLite, and an optional
advisory model provides display-only market commentary.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
