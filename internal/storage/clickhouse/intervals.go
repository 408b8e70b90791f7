package clickhouse

import (
	"context"
	"time"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func (s *Store) StoreDepthInterval(ctx context.Context, d model.DepthInterval) (time.Duration, error) {
	row := depthRow(d)
	elapsed, err := s.insert(ctx, depthTable, d.EndTime, &row)
	return elapsed, storage.Wrap("insert depth interval", err)
}

func (s *Store) ReadDepthIntervals(ctx context.Context) ([]model.DepthInterval, time.Duration, error) {
	var rows []depthRow
	elapsed, err := s.selectAll(ctx, depthTable, &rows)
	if err != nil {
		return nil, elapsed, storage.Wrap("read depth intervals", err)
	}
	out := make([]model.DepthInterval, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.DepthInterval(r))
	}
	return out, elapsed, nil
}

func (s *Store) StoreSwapsInterval(ctx context.Context, w model.SwapsInterval) (time.Duration, error) {
	row := swapsRow(w)
	elapsed, err := s.insert(ctx, swapsTable, w.EndTime, &row)
	return elapsed, storage.Wrap("insert swaps interval", err)
}

func (s *Store) ReadSwapsIntervals(ctx context.Context) ([]model.SwapsInterval, time.Duration, error) {
	var rows []swapsRow
	elapsed, err := s.selectAll(ctx, swapsTable, &rows)
	if err != nil {
		return nil, elapsed, storage.Wrap("read swaps intervals", err)
	}
	out := make([]model.SwapsInterval, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.SwapsInterval(r))
	}
	return out, elapsed, nil
}

func (s *Store) StoreEarningInterval(ctx context.Context, e model.EarningInterval) (time.Duration, error) {
	row := newEarningRow(e)
	elapsed, err := s.insert(ctx, earningsTable, e.EndTime, &row)
	return elapsed, storage.Wrap("insert earning interval", err)
}

func (s *Store) ReadEarningIntervals(ctx context.Context) ([]model.EarningInterval, time.Duration, error) {
	var rows []earningRow
	elapsed, err := s.selectAll(ctx, earningsTable, &rows)
	if err != nil {
		return nil, elapsed, storage.Wrap("read earning intervals", err)
	}
	out := make([]model.EarningInterval, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.interval())
	}
	return out, elapsed, nil
}

func (s *Store) StoreRunePoolInterval(ctx context.Context, r model.RunePoolInterval) (time.Duration, error) {
	row := runePoolRow(r)
	elapsed, err := s.insert(ctx, runePoolTable, r.EndTime, &row)
	return elapsed, storage.Wrap("insert rune pool interval", err)
}

func (s *Store) ReadRunePoolIntervals(ctx context.Context) ([]model.RunePoolInterval, time.Duration, error) {
	var rows []runePoolRow
	elapsed, err := s.selectAll(ctx, runePoolTable, &rows)
	if err != nil {
		return nil, elapsed, storage.Wrap("read rune pool intervals", err)
	}
	out := make([]model.RunePoolInterval, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.RunePoolInterval(r))
	}
	return out, elapsed, nil
}
