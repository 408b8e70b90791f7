package postgres

import (
	"context"
	"time"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func (s *Store) StoreDepthInterval(ctx context.Context, d model.DepthInterval) (time.Duration, error) {
	start := time.Now()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO depthinterval (
			asset_depth, asset_price, asset_price_usd, end_time, liquidity_units, luvi,
			members_count, rune_depth, start_time, synth_supply, synth_units, units
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (end_time) DO NOTHING
	`,
		d.AssetDepth,
		d.AssetPrice,
		d.AssetPriceUSD,
		d.EndTime,
		d.LiquidityUnits,
		d.Luvi,
		d.MembersCount,
		d.RuneDepth,
		d.StartTime,
		d.SynthSupply,
		d.SynthUnits,
		d.Units,
	)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, storage.Wrap("insert depth interval", err)
	}
	return elapsed, nil
}

func (s *Store) ReadDepthIntervals(ctx context.Context) ([]model.DepthInterval, time.Duration, error) {
	start := time.Now()
	rows, err := s.pool.Query(ctx, `
		SELECT asset_depth, asset_price, asset_price_usd, end_time, liquidity_units, luvi,
			members_count, rune_depth, start_time, synth_supply, synth_units, units
		FROM depthinterval
	`)
	if err != nil {
		return nil, time.Since(start), storage.Wrap("query depth intervals", err)
	}
	defer rows.Close()

	var out []model.DepthInterval
	for rows.Next() {
		var d model.DepthInterval
		if err := rows.Scan(
			&d.AssetDepth,
			&d.AssetPrice,
			&d.AssetPriceUSD,
			&d.EndTime,
			&d.LiquidityUnits,
			&d.Luvi,
			&d.MembersCount,
			&d.RuneDepth,
			&d.StartTime,
			&d.SynthSupply,
			&d.SynthUnits,
			&d.Units,
		); err != nil {
			return nil, time.Since(start), storage.Wrap("scan depth interval", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Since(start), storage.Wrap("iterate depth intervals", err)
	}
	return out, time.Since(start), nil
}
