package model

// DepthInterval is one bucket of pool depth and price history.
type DepthInterval struct {
	AssetDepth     int64   `json:"assetDepth"`
	AssetPrice     float64 `json:"assetPrice"`
	AssetPriceUSD  float64 `json:"assetPriceUSD"`
	EndTime        int64   `json:"endTime"`
	LiquidityUnits int64   `json:"liquidityUnits"`
	Luvi           float64 `json:"luvi"`
	MembersCount   int64   `json:"membersCount"`
	RuneDepth      int64   `json:"runeDepth"`
	StartTime      int64   `json:"startTime"`
	SynthSupply    int64   `json:"synthSupply"`
	SynthUnits     int64   `json:"synthUnits"`
	Units          int64   `json:"units"`
}
