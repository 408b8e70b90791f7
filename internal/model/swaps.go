package model

// SwapsInterval is one bucket of swap volume, fee and slippage history,
// split by swap direction.
type SwapsInterval struct {
	AverageSlip            float64 `json:"averageSlip"`
	EndTime                int64   `json:"endTime"`
	FromTradeAverageSlip   float64 `json:"fromTradeAverageSlip"`
	FromTradeCount         int64   `json:"fromTradeCount"`
	FromTradeFees          int64   `json:"fromTradeFees"`
	FromTradeVolume        int64   `json:"fromTradeVolume"`
	FromTradeVolumeUSD     int64   `json:"fromTradeVolumeUSD"`
	RunePriceUSD           float64 `json:"runePriceUSD"`
	StartTime              int64   `json:"startTime"`
	SynthMintAverageSlip   float64 `json:"synthMintAverageSlip"`
	SynthMintCount         int64   `json:"synthMintCount"`
	SynthMintFees          int64   `json:"synthMintFees"`
	SynthMintVolume        int64   `json:"synthMintVolume"`
	SynthMintVolumeUSD     int64   `json:"synthMintVolumeUSD"`
	SynthRedeemAverageSlip float64 `json:"synthRedeemAverageSlip"`
	SynthRedeemCount       int64   `json:"synthRedeemCount"`
	SynthRedeemFees        int64   `json:"synthRedeemFees"`
	SynthRedeemVolume      int64   `json:"synthRedeemVolume"`
	SynthRedeemVolumeUSD   int64   `json:"synthRedeemVolumeUSD"`
	ToAssetAverageSlip     float64 `json:"toAssetAverageSlip"`
	ToAssetCount           int64   `json:"toAssetCount"`
	ToAssetFees            int64   `json:"toAssetFees"`
	ToAssetVolume          int64   `json:"toAssetVolume"`
	ToAssetVolumeUSD       int64   `json:"toAssetVolumeUSD"`
	ToRuneAverageSlip      float64 `json:"toRuneAverageSlip"`
	ToRuneCount            int64   `json:"toRuneCount"`
	ToRuneFees             int64   `json:"toRuneFees"`
	ToRuneVolume           int64   `json:"toRuneVolume"`
	ToRuneVolumeUSD        int64   `json:"toRuneVolumeUSD"`
	TotalCount             int64   `json:"totalCount"`
	TotalFees              int64   `json:"totalFees"`
	TotalVolume            int64   `json:"totalVolume"`
	TotalVolumeUSD         int64   `json:"totalVolumeUSD"`
}
