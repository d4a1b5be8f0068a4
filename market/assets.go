package market

// AssetMeta describes a tradable instrument. Spread is the per-asset price
// unit all risk distances scale from (stops, trailing steps, invalidation
// buffer). BaseVolatility and SeedPrice drive the synthetic feed.
type AssetMeta struct {
	Name                 string
	Leverage             float64
	Spread               float64
	RecommendedTimeframe string
	BaseVolatility       float64
	SeedPrice            float64
}

var Assets = map[string]AssetMeta{
	"BTCUSD": {
		Name:                 "Bitcoin",
		Leverage:             100,
		Spread:               20,
		RecommendedTimeframe: "H1", // crypto needs a higher TF to filter noise
		BaseVolatility:       50,
		SeedPrice:            65000,
	},
	"XAUUSD": {
		Name:                 "Gold",
		Leverage:             200,
		Spread:               0.2,
		RecommendedTimeframe: "M15",
		BaseVolatility:       2,
		SeedPrice:            2350,
	},
	"EURUSD": {
		Name:                 "Euro",
		Leverage:             500,
		Spread:               0.0001,
		RecommendedTimeframe: "M5", // high liquidity allows faster scalping
		BaseVolatility:       0.0005,
		SeedPrice:            1.0800,
	},
}
