package neo4j

import (
	"context"
	"fmt"
	"time"

	neo "github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

var (
	earningExistsQuery = fmt.Sprintf(
		"MATCH (e:%s {endTime: $endTime}) RETURN count(e) AS n", earningLabel)
	earningCreateQuery = fmt.Sprintf(
		"CREATE (e:%s) SET e = $props", earningLabel)
	earningPoolsQuery = fmt.Sprintf(`MATCH (e:%s {endTime: $endTime})
UNWIND $pools AS pool
CREATE (e)-[:HAS_POOL {position: pool.position}]->(p:%s)
SET p = pool.props`, earningLabel, poolLabel)
	earningReadQuery = fmt.Sprintf(`MATCH (e:%s)
OPTIONAL MATCH (e)-[r:HAS_POOL]->(p:%s)
WITH e, r, p ORDER BY r.position
WITH e, collect(properties(p)) AS pools
RETURN properties(e) AS props, pools
ORDER BY e.endTime`, earningLabel, poolLabel)
)

// StoreEarningInterval writes the interval node and its pools in one
// transaction. An interval that already exists is left untouched together
// with its pools.
func (s *Store) StoreEarningInterval(ctx context.Context, e model.EarningInterval) (time.Duration, error) {
	props, err := toProps(e, "pools")
	if err != nil {
		return 0, storage.Wrap("store earning interval", err)
	}
	pools := make([]any, 0, len(e.Pools))
	for i, p := range e.Pools {
		poolProps, err := toProps(p)
		if err != nil {
			return 0, storage.Wrap("store earning interval", err)
		}
		pools = append(pools, map[string]any{"position": int64(i), "props": poolProps})
	}

	session := s.driver.NewSession(ctx, neo.SessionConfig{AccessMode: neo.AccessModeWrite})
	defer session.Close(ctx)

	start := time.Now()
	_, err = session.ExecuteWrite(ctx, func(tx neo.ManagedTransaction) (any, error) {
		params := map[string]any{"endTime": e.EndTime}
		result, err := tx.Run(ctx, earningExistsQuery, params)
		if err != nil {
			return nil, err
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, err
		}
		if n, _ := record.Get("n"); n.(int64) > 0 {
			return nil, nil
		}

		if result, err = tx.Run(ctx, earningCreateQuery, map[string]any{"props": props}); err != nil {
			return nil, err
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, err
		}
		if len(pools) == 0 {
			return nil, nil
		}
		params["pools"] = pools
		if result, err = tx.Run(ctx, earningPoolsQuery, params); err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	return time.Since(start), storage.Wrap("store earning interval", err)
}

// ReadEarningIntervals loads every interval with its pools in position order.
func (s *Store) ReadEarningIntervals(ctx context.Context) ([]model.EarningInterval, time.Duration, error) {
	session := s.driver.NewSession(ctx, neo.SessionConfig{AccessMode: neo.AccessModeRead})
	defer session.Close(ctx)

	type row struct {
		props map[string]any
		pools []any
	}

	start := time.Now()
	rows, err := session.ExecuteRead(ctx, func(tx neo.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, earningReadQuery, nil)
		if err != nil {
			return nil, err
		}
		var out []row
		for result.Next(ctx) {
			rec := result.Record()
			props, _ := rec.Get("props")
			pools, _ := rec.Get("pools")
			m, ok := props.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("unexpected %T for node properties", props)
			}
			list, _ := pools.([]any)
			out = append(out, row{props: m, pools: list})
		}
		return out, result.Err()
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, storage.Wrap("read earning intervals", err)
	}

	var out []model.EarningInterval
	for _, r := range rows.([]row) {
		e, err := fromProps[model.EarningInterval](r.props)
		if err != nil {
			return nil, elapsed, storage.Wrap("read earning intervals", err)
		}
		e.Pools = make([]model.Pool, 0, len(r.pools))
		for _, raw := range r.pools {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			p, err := fromProps[model.Pool](m)
			if err != nil {
				return nil, elapsed, storage.Wrap("read earning intervals", err)
			}
			e.Pools = append(e.Pools, p)
		}
		if len(e.Pools) == 0 {
			e.Pools = nil
		}
		out = append(out, e)
	}
	return out, elapsed, nil
}
