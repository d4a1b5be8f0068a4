package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	j, err := NewCSV(tradesPath, equityPath)
	require.NoError(t, err)

	opened := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	closed := opened.Add(30 * time.Minute)

	require.NoError(t, j.RecordTrade(TradeRecord{
		PositionID:  "p1",
		Asset:       "EURUSD",
		Side:        "SELL",
		Size:        1,
		EntryPrice:  1.08,
		ExitPrice:   1.0776,
		OpenTime:    opened,
		CloseTime:   closed,
		RealizedPnL: 0.0024,
		Reason:      "TP Hit",
	}))
	require.NoError(t, j.RecordEquity(EquitySnapshot{Time: closed, Balance: 10000.0024, Equity: 10000.0024}))
	require.NoError(t, j.Close())

	trades := readCSV(t, tradesPath)
	require.Len(t, trades, 2)
	assert.Equal(t, []string{"position_id", "asset", "side", "size", "entry_price", "exit_price", "open_time", "close_time", "realized_pnl", "reason"}, trades[0])
	assert.Equal(t, "p1", trades[1][0])
	assert.Equal(t, "EURUSD", trades[1][1])
	assert.Equal(t, "SELL", trades[1][2])
	assert.Equal(t, "1.08", trades[1][4])
	assert.Equal(t, "2025-06-01T09:00:00Z", trades[1][6])
	assert.Equal(t, "TP Hit", trades[1][9])

	equity := readCSV(t, equityPath)
	require.Len(t, equity, 2)
	assert.Equal(t, []string{"time", "balance", "equity"}, equity[0])
	assert.Equal(t, "2025-06-01T09:30:00Z", equity[1][0])
	assert.Equal(t, "10000.0024", equity[1][1])
}

func TestCSVRecordsAreDurablePerWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	j, err := NewCSV(tradesPath, filepath.Join(dir, "equity.csv"))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.RecordTrade(TradeRecord{PositionID: "p1", Asset: "BTCUSD", Side: "BUY"}))

	// Flushed on every record, so the row is on disk before Close.
	trades := readCSV(t, tradesPath)
	require.Len(t, trades, 2)
	assert.Equal(t, "p1", trades[1][0])
}
