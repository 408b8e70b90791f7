package postgres

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func (s *Store) StoreEarningInterval(ctx context.Context, e model.EarningInterval) (time.Duration, error) {
	pools, err := encodePools(e.Pools)
	if err != nil {
		return 0, storage.Wrap("encode earning pools", err)
	}

	start := time.Now()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO earninginterval (
			avg_node_count, block_rewards, bonding_earnings, earnings, end_time,
			liquidity_earnings, liquidity_fees, rune_price_usd, start_time, pools
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (end_time) DO NOTHING
	`,
		e.AvgNodeCount,
		e.BlockRewards,
		e.BondingEarnings,
		e.Earnings,
		e.EndTime,
		e.LiquidityEarnings,
		e.LiquidityFees,
		e.RunePriceUSD,
		e.StartTime,
		pools,
	)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, storage.Wrap("insert earning interval", err)
	}
	return elapsed, nil
}

func (s *Store) ReadEarningIntervals(ctx context.Context) ([]model.EarningInterval, time.Duration, error) {
	start := time.Now()
	rows, err := s.pool.Query(ctx, `
		SELECT avg_node_count, block_rewards, bonding_earnings, earnings, end_time,
			liquidity_earnings, liquidity_fees, rune_price_usd, start_time, pools
		FROM earninginterval
	`)
	if err != nil {
		return nil, time.Since(start), storage.Wrap("query earning intervals", err)
	}
	defer rows.Close()

	var out []model.EarningInterval
	for rows.Next() {
		var (
			e     model.EarningInterval
			pools *string
		)
		if err := rows.Scan(
			&e.AvgNodeCount,
			&e.BlockRewards,
			&e.BondingEarnings,
			&e.Earnings,
			&e.EndTime,
			&e.LiquidityEarnings,
			&e.LiquidityFees,
			&e.RunePriceUSD,
			&e.StartTime,
			&pools,
		); err != nil {
			return nil, time.Since(start), storage.Wrap("scan earning interval", err)
		}
		e.Pools = s.decodePools(e.EndTime, pools)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Since(start), storage.Wrap("iterate earning intervals", err)
	}
	return out, time.Since(start), nil
}

// encodePools flattens the pool list into the JSON text stored in the
// pools column.
func encodePools(pools []model.Pool) (string, error) {
	b, err := json.Marshal(pools)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodePools restores the pool list. A NULL or malformed column yields an
// empty list; the row itself is still returned.
func (s *Store) decodePools(endTime int64, raw *string) []model.Pool {
	if raw == nil {
		return []model.Pool{}
	}
	var pools []model.Pool
	if err := json.Unmarshal([]byte(*raw), &pools); err != nil {
		s.logger.Warn("discarding undecodable earning pools",
			zap.Int64("end_time", endTime),
			zap.Error(err),
		)
		return []model.Pool{}
	}
	return pools
}
