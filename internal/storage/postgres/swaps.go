package postgres

import (
	"context"
	"time"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

const swapsColumns = `
	average_slip, end_time, from_trade_average_slip, from_trade_count, from_trade_fees,
	from_trade_volume, from_trade_volume_usd, rune_price_usd, start_time,
	synth_mint_average_slip, synth_mint_count, synth_mint_fees, synth_mint_volume, synth_mint_volume_usd,
	synth_redeem_average_slip, synth_redeem_count, synth_redeem_fees, synth_redeem_volume, synth_redeem_volume_usd,
	to_asset_average_slip, to_asset_count, to_asset_fees, to_asset_volume, to_asset_volume_usd,
	to_rune_average_slip, to_rune_count, to_rune_fees, to_rune_volume, to_rune_volume_usd,
	total_count, total_fees, total_volume, total_volume_usd`

func (s *Store) StoreSwapsInterval(ctx context.Context, w model.SwapsInterval) (time.Duration, error) {
	start := time.Now()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO swapsinterval (`+swapsColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33)
		ON CONFLICT (end_time) DO NOTHING
	`,
		w.AverageSlip,
		w.EndTime,
		w.FromTradeAverageSlip,
		w.FromTradeCount,
		w.FromTradeFees,
		w.FromTradeVolume,
		w.FromTradeVolumeUSD,
		w.RunePriceUSD,
		w.StartTime,
		w.SynthMintAverageSlip,
		w.SynthMintCount,
		w.SynthMintFees,
		w.SynthMintVolume,
		w.SynthMintVolumeUSD,
		w.SynthRedeemAverageSlip,
		w.SynthRedeemCount,
		w.SynthRedeemFees,
		w.SynthRedeemVolume,
		w.SynthRedeemVolumeUSD,
		w.ToAssetAverageSlip,
		w.ToAssetCount,
		w.ToAssetFees,
		w.ToAssetVolume,
		w.ToAssetVolumeUSD,
		w.ToRuneAverageSlip,
		w.ToRuneCount,
		w.ToRuneFees,
		w.ToRuneVolume,
		w.ToRuneVolumeUSD,
		w.TotalCount,
		w.TotalFees,
		w.TotalVolume,
		w.TotalVolumeUSD,
	)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, storage.Wrap("insert swaps interval", err)
	}
	return elapsed, nil
}

func (s *Store) ReadSwapsIntervals(ctx context.Context) ([]model.SwapsInterval, time.Duration, error) {
	start := time.Now()
	rows, err := s.pool.Query(ctx, `SELECT `+swapsColumns+` FROM swapsinterval`)
	if err != nil {
		return nil, time.Since(start), storage.Wrap("query swaps intervals", err)
	}
	defer rows.Close()

	var out []model.SwapsInterval
	for rows.Next() {
		var w model.SwapsInterval
		if err := rows.Scan(
			&w.AverageSlip,
			&w.EndTime,
			&w.FromTradeAverageSlip,
			&w.FromTradeCount,
			&w.FromTradeFees,
			&w.FromTradeVolume,
			&w.FromTradeVolumeUSD,
			&w.RunePriceUSD,
			&w.StartTime,
			&w.SynthMintAverageSlip,
			&w.SynthMintCount,
			&w.SynthMintFees,
			&w.SynthMintVolume,
			&w.SynthMintVolumeUSD,
			&w.SynthRedeemAverageSlip,
			&w.SynthRedeemCount,
			&w.SynthRedeemFees,
			&w.SynthRedeemVolume,
			&w.SynthRedeemVolumeUSD,
			&w.ToAssetAverageSlip,
			&w.ToAssetCount,
			&w.ToAssetFees,
			&w.ToAssetVolume,
			&w.ToAssetVolumeUSD,
			&w.ToRuneAverageSlip,
			&w.ToRuneCount,
			&w.ToRuneFees,
			&w.ToRuneVolume,
			&w.ToRuneVolumeUSD,
			&w.TotalCount,
			&w.TotalFees,
			&w.TotalVolume,
			&w.TotalVolumeUSD,
		); err != nil {
			return nil, time.Since(start), storage.Wrap("scan swaps interval", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Since(start), storage.Wrap("iterate swaps intervals", err)
	}
	return out, time.Since(start), nil
}
