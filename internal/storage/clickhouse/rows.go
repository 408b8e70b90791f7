package clickhouse

import "thorchainStore/internal/model"

// Row types mirror the model field for field so they convert directly; the
// ch tags bind them to table columns.

type depthRow struct {
	AssetDepth     int64   `ch:"asset_depth"`
	AssetPrice     float64 `ch:"asset_price"`
	AssetPriceUSD  float64 `ch:"asset_price_usd"`
	EndTime        int64   `ch:"end_time"`
	LiquidityUnits int64   `ch:"liquidity_units"`
	Luvi           float64 `ch:"luvi"`
	MembersCount   int64   `ch:"members_count"`
	RuneDepth      int64   `ch:"rune_depth"`
	StartTime      int64   `ch:"start_time"`
	SynthSupply    int64   `ch:"synth_supply"`
	SynthUnits     int64   `ch:"synth_units"`
	Units          int64   `ch:"units"`
}

type swapsRow struct {
	AverageSlip            float64 `ch:"average_slip"`
	EndTime                int64   `ch:"end_time"`
	FromTradeAverageSlip   float64 `ch:"from_trade_average_slip"`
	FromTradeCount         int64   `ch:"from_trade_count"`
	FromTradeFees          int64   `ch:"from_trade_fees"`
	FromTradeVolume        int64   `ch:"from_trade_volume"`
	FromTradeVolumeUSD     int64   `ch:"from_trade_volume_usd"`
	RunePriceUSD           float64 `ch:"rune_price_usd"`
	StartTime              int64   `ch:"start_time"`
	SynthMintAverageSlip   float64 `ch:"synth_mint_average_slip"`
	SynthMintCount         int64   `ch:"synth_mint_count"`
	SynthMintFees          int64   `ch:"synth_mint_fees"`
	SynthMintVolume        int64   `ch:"synth_mint_volume"`
	SynthMintVolumeUSD     int64   `ch:"synth_mint_volume_usd"`
	SynthRedeemAverageSlip float64 `ch:"synth_redeem_average_slip"`
	SynthRedeemCount       int64   `ch:"synth_redeem_count"`
	SynthRedeemFees        int64   `ch:"synth_redeem_fees"`
	SynthRedeemVolume      int64   `ch:"synth_redeem_volume"`
	SynthRedeemVolumeUSD   int64   `ch:"synth_redeem_volume_usd"`
	ToAssetAverageSlip     float64 `ch:"to_asset_average_slip"`
	ToAssetCount           int64   `ch:"to_asset_count"`
	ToAssetFees            int64   `ch:"to_asset_fees"`
	ToAssetVolume          int64   `ch:"to_asset_volume"`
	ToAssetVolumeUSD       int64   `ch:"to_asset_volume_usd"`
	ToRuneAverageSlip      float64 `ch:"to_rune_average_slip"`
	ToRuneCount            int64   `ch:"to_rune_count"`
	ToRuneFees             int64   `ch:"to_rune_fees"`
	ToRuneVolume           int64   `ch:"to_rune_volume"`
	ToRuneVolumeUSD        int64   `ch:"to_rune_volume_usd"`
	TotalCount             int64   `ch:"total_count"`
	TotalFees              int64   `ch:"total_fees"`
	TotalVolume            int64   `ch:"total_volume"`
	TotalVolumeUSD         int64   `ch:"total_volume_usd"`
}

type runePoolRow struct {
	Count     int64 `ch:"count"`
	EndTime   int64 `ch:"end_time"`
	StartTime int64 `ch:"start_time"`
	Units     int64 `ch:"units"`
}

type earningRow struct {
	AvgNodeCount           float64  `ch:"avg_node_count"`
	BlockRewards           int64    `ch:"block_rewards"`
	BondingEarnings        int64    `ch:"bonding_earnings"`
	Earnings               int64    `ch:"earnings"`
	EndTime                int64    `ch:"end_time"`
	LiquidityEarnings      int64    `ch:"liquidity_earnings"`
	LiquidityFees          int64    `ch:"liquidity_fees"`
	RunePriceUSD           float64  `ch:"rune_price_usd"`
	StartTime              int64    `ch:"start_time"`
	PoolNames              []string `ch:"pool_names"`
	PoolAssetLiquidityFees []int64  `ch:"pool_asset_liquidity_fees"`
	PoolEarnings           []int64  `ch:"pool_earnings"`
	PoolRewards            []int64  `ch:"pool_rewards"`
	PoolRuneLiquidityFees  []int64  `ch:"pool_rune_liquidity_fees"`
	PoolSaverEarning       []int64  `ch:"pool_saver_earning"`
	PoolTotalLiquidityFees []int64  `ch:"pool_total_liquidity_fees_rune"`
}

// newEarningRow splits the pool list into parallel arrays.
func newEarningRow(e model.EarningInterval) earningRow {
	row := earningRow{
		AvgNodeCount:      e.AvgNodeCount,
		BlockRewards:      e.BlockRewards,
		BondingEarnings:   e.BondingEarnings,
		Earnings:          e.Earnings,
		EndTime:           e.EndTime,
		LiquidityEarnings: e.LiquidityEarnings,
		LiquidityFees:     e.LiquidityFees,
		RunePriceUSD:      e.RunePriceUSD,
		StartTime:         e.StartTime,
	}
	n := len(e.Pools)
	row.PoolNames = make([]string, 0, n)
	row.PoolAssetLiquidityFees = make([]int64, 0, n)
	row.PoolEarnings = make([]int64, 0, n)
	row.PoolRewards = make([]int64, 0, n)
	row.PoolRuneLiquidityFees = make([]int64, 0, n)
	row.PoolSaverEarning = make([]int64, 0, n)
	row.PoolTotalLiquidityFees = make([]int64, 0, n)
	for _, p := range e.Pools {
		row.PoolNames = append(row.PoolNames, p.Pool)
		row.PoolAssetLiquidityFees = append(row.PoolAssetLiquidityFees, p.AssetLiquidityFees)
		row.PoolEarnings = append(row.PoolEarnings, p.Earnings)
		row.PoolRewards = append(row.PoolRewards, p.Rewards)
		row.PoolRuneLiquidityFees = append(row.PoolRuneLiquidityFees, p.RuneLiquidityFees)
		row.PoolSaverEarning = append(row.PoolSaverEarning, p.SaverEarning)
		row.PoolTotalLiquidityFees = append(row.PoolTotalLiquidityFees, p.TotalLiquidityFeesRune)
	}
	return row
}

// interval zips the pool arrays back together. Arrays shorter than
// pool_names read as zero for the missing positions.
func (r earningRow) interval() model.EarningInterval {
	e := model.EarningInterval{
		AvgNodeCount:      r.AvgNodeCount,
		BlockRewards:      r.BlockRewards,
		BondingEarnings:   r.BondingEarnings,
		Earnings:          r.Earnings,
		EndTime:           r.EndTime,
		LiquidityEarnings: r.LiquidityEarnings,
		LiquidityFees:     r.LiquidityFees,
		RunePriceUSD:      r.RunePriceUSD,
		StartTime:         r.StartTime,
	}
	for i, name := range r.PoolNames {
		e.Pools = append(e.Pools, model.Pool{
			Pool:                   name,
			AssetLiquidityFees:     at(r.PoolAssetLiquidityFees, i),
			Earnings:               at(r.PoolEarnings, i),
			Rewards:                at(r.PoolRewards, i),
			RuneLiquidityFees:      at(r.PoolRuneLiquidityFees, i),
			SaverEarning:           at(r.PoolSaverEarning, i),
			TotalLiquidityFeesRune: at(r.PoolTotalLiquidityFees, i),
		})
	}
	return e
}

func at(values []int64, i int) int64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
