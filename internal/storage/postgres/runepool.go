package postgres

import (
	"context"
	"time"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func (s *Store) StoreRunePoolInterval(ctx context.Context, r model.RunePoolInterval) (time.Duration, error) {
	start := time.Now()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO runepoolinterval (count, end_time, start_time, units)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (end_time) DO NOTHING
	`, r.Count, r.EndTime, r.StartTime, r.Units)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, storage.Wrap("insert runepool interval", err)
	}
	return elapsed, nil
}

func (s *Store) ReadRunePoolIntervals(ctx context.Context) ([]model.RunePoolInterval, time.Duration, error) {
	start := time.Now()
	rows, err := s.pool.Query(ctx, `SELECT count, end_time, start_time, units FROM runepoolinterval`)
	if err != nil {
		return nil, time.Since(start), storage.Wrap("query runepool intervals", err)
	}
	defer rows.Close()

	var out []model.RunePoolInterval
	for rows.Next() {
		var r model.RunePoolInterval
		if err := rows.Scan(&r.Count, &r.EndTime, &r.StartTime, &r.Units); err != nil {
			return nil, time.Since(start), storage.Wrap("scan runepool interval", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Since(start), storage.Wrap("iterate runepool intervals", err)
	}
	return out, time.Since(start), nil
}
