package model

// EarningInterval is one bucket of network earnings. Pools is owned by the
// interval: it is always stored and loaded together with its parent and
// keeps its upstream order.
type EarningInterval struct {
	AvgNodeCount      float64 `json:"avgNodeCount"`
	BlockRewards      int64   `json:"blockRewards"`
	BondingEarnings   int64   `json:"bondingEarnings"`
	Earnings          int64   `json:"earnings"`
	EndTime           int64   `json:"endTime"`
	LiquidityEarnings int64   `json:"liquidityEarnings"`
	LiquidityFees     int64   `json:"liquidityFees"`
	RunePriceUSD      float64 `json:"runePriceUSD"`
	StartTime         int64   `json:"startTime"`
	Pools             []Pool  `json:"pools"`
}

// Pool is the per-pool earnings breakdown inside an EarningInterval.
type Pool struct {
	Pool                   string `json:"pool"`
	AssetLiquidityFees     int64  `json:"assetLiquidityFees"`
	Earnings               int64  `json:"earnings"`
	Rewards                int64  `json:"rewards"`
	RuneLiquidityFees      int64  `json:"runeLiquidityFees"`
	SaverEarning           int64  `json:"saverEarning"`
	TotalLiquidityFeesRune int64  `json:"totalLiquidityFeesRune"`
}
