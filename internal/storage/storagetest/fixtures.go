package storagetest

import "thorchainStore/internal/model"

const hour = int64(3600)

// Depth returns a fully populated DepthInterval ending at end.
func Depth(end int64) model.DepthInterval {
	return model.DepthInterval{
		AssetDepth:     125000000000 + end%1000,
		AssetPrice:     18250.5,
		AssetPriceUSD:  63125.25,
		EndTime:        end,
		LiquidityUnits: 4200000000000,
		Luvi:           0.125,
		MembersCount:   412,
		RuneDepth:      2281312500000000,
		StartTime:      end - hour,
		SynthSupply:    3100000000,
		SynthUnits:     1700000000,
		Units:          4201700000000,
	}
}

// Swaps returns a fully populated SwapsInterval ending at end.
func Swaps(end int64) model.SwapsInterval {
	return model.SwapsInterval{
		AverageSlip:            4.5,
		EndTime:                end,
		FromTradeAverageSlip:   1.25,
		FromTradeCount:         3,
		FromTradeFees:          1200,
		FromTradeVolume:        910000000,
		FromTradeVolumeUSD:     4100000000,
		RunePriceUSD:           4.5,
		StartTime:              end - hour,
		SynthMintAverageSlip:   2.5,
		SynthMintCount:         7,
		SynthMintFees:          3400,
		SynthMintVolume:        1820000000,
		SynthMintVolumeUSD:     8200000000,
		SynthRedeemAverageSlip: 3.75,
		SynthRedeemCount:       2,
		SynthRedeemFees:        560,
		SynthRedeemVolume:      455000000,
		SynthRedeemVolumeUSD:   2050000000,
		ToAssetAverageSlip:     5.5,
		ToAssetCount:           41,
		ToAssetFees:            98000,
		ToAssetVolume:          72000000000,
		ToAssetVolumeUSD:       324000000000,
		ToRuneAverageSlip:      6.25,
		ToRuneCount:            38,
		ToRuneFees:             87000,
		ToRuneVolume:           69000000000,
		ToRuneVolumeUSD:        310500000000,
		TotalCount:             91,
		TotalFees:              190160,
		TotalVolume:            144185000000,
		TotalVolumeUSD:         648850000000,
	}
}

// Earning returns a fully populated EarningInterval ending at end with the
// given number of pools.
func Earning(end int64, pools int) model.EarningInterval {
	e := model.EarningInterval{
		AvgNodeCount:      101.5,
		BlockRewards:      1520000000,
		BondingEarnings:   1180000000,
		Earnings:          2360000000,
		EndTime:           end,
		LiquidityEarnings: 1180000000,
		LiquidityFees:     840000000,
		RunePriceUSD:      4.5,
		StartTime:         end - hour,
	}
	names := []string{"BTC.BTC", "ETH.ETH", "BSC.BNB", "AVAX.AVAX", "GAIA.ATOM"}
	for i := 0; i < pools; i++ {
		e.Pools = append(e.Pools, model.Pool{
			Pool:                   names[i%len(names)],
			AssetLiquidityFees:     int64(1000 * (i + 1)),
			Earnings:               int64(5000 * (i + 1)),
			Rewards:                int64(-200 * i),
			RuneLiquidityFees:      int64(700 * (i + 1)),
			SaverEarning:           int64(30 * i),
			TotalLiquidityFeesRune: int64(1900 * (i + 1)),
		})
	}
	return e
}

// RunePool returns a fully populated RunePoolInterval ending at end.
func RunePool(end int64) model.RunePoolInterval {
	return model.RunePoolInterval{
		Count:     88,
		EndTime:   end,
		StartTime: end - hour,
		Units:     512000000000,
	}
}
