// Package neo4j implements storage.Storage on Neo4j. Every interval is a node
// labelled by its kind and keyed by endTime; earnings pools are child nodes
// reached through ordered HAS_POOL relationships.
package neo4j

import (
	"context"
	"fmt"
	"time"

	neo "github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

// Node labels per kind.
const (
	depthLabel    = "depth_interval"
	swapsLabel    = "swaps_interval"
	earningLabel  = "earning_interval"
	runePoolLabel = "rune_pool_interval"
	poolLabel     = "earning_pool"
)

var intervalLabels = []string{depthLabel, swapsLabel, earningLabel, runePoolLabel}

// Store provides Neo4j persistence for interval records.
type Store struct {
	driver neo.DriverWithContext
	logger *zap.Logger
}

// Compile-time interface check.
var _ storage.Storage = (*Store)(nil)

// Open creates a driver for uri, verifies connectivity with the given
// credentials and makes sure every interval label has a unique endTime.
func Open(ctx context.Context, uri, username, password string, logger *zap.Logger) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("neo4j uri is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	driver, err := neo.NewDriverWithContext(uri, neo.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connect to neo4j: %w", err)
	}

	s := &Store{driver: driver, logger: logger}
	if err := s.ensureConstraints(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}
	logger.Info("neo4j storage ready", zap.String("uri", uri))
	return s, nil
}

func (s *Store) ensureConstraints(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo.SessionConfig{AccessMode: neo.AccessModeWrite})
	defer session.Close(ctx)

	for _, label := range intervalLabels {
		query := fmt.Sprintf(
			"CREATE CONSTRAINT %s_end_time IF NOT EXISTS FOR (n:%s) REQUIRE n.endTime IS UNIQUE",
			label, label,
		)
		result, err := session.Run(ctx, query, nil)
		if err != nil {
			return fmt.Errorf("create constraint on %s: %w", label, err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return fmt.Errorf("create constraint on %s: %w", label, err)
		}
	}
	return nil
}

// Backend implements storage.Storage.
func (s *Store) Backend() string {
	return "neo4j"
}

// Close releases the driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// merge writes one flat record unless a node with the same endTime exists.
func (s *Store) merge(ctx context.Context, label string, endTime int64, record any) (time.Duration, error) {
	props, err := toProps(record)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf("MERGE (n:%s {endTime: $endTime}) ON CREATE SET n += $props", label)

	session := s.driver.NewSession(ctx, neo.SessionConfig{AccessMode: neo.AccessModeWrite})
	defer session.Close(ctx)

	start := time.Now()
	_, err = session.ExecuteWrite(ctx, func(tx neo.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"endTime": endTime, "props": props})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	return time.Since(start), err
}

// readAll loads every node with label ordered by endTime.
func readAll[T any](ctx context.Context, s *Store, label string) ([]T, time.Duration, error) {
	query := fmt.Sprintf("MATCH (n:%s) RETURN properties(n) AS props ORDER BY n.endTime", label)

	session := s.driver.NewSession(ctx, neo.SessionConfig{AccessMode: neo.AccessModeRead})
	defer session.Close(ctx)

	start := time.Now()
	rows, err := session.ExecuteRead(ctx, func(tx neo.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		var props []map[string]any
		for result.Next(ctx) {
			value, _ := result.Record().Get("props")
			m, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("unexpected %T for node properties", value)
			}
			props = append(props, m)
		}
		return props, result.Err()
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, err
	}

	var out []T
	for _, p := range rows.([]map[string]any) {
		record, err := fromProps[T](p)
		if err != nil {
			return nil, elapsed, err
		}
		out = append(out, record)
	}
	return out, elapsed, nil
}

// StoreDepthInterval implements storage.Storage.
func (s *Store) StoreDepthInterval(ctx context.Context, d model.DepthInterval) (time.Duration, error) {
	elapsed, err := s.merge(ctx, depthLabel, d.EndTime, d)
	return elapsed, storage.Wrap("store depth interval", err)
}

// ReadDepthIntervals implements storage.Storage.
func (s *Store) ReadDepthIntervals(ctx context.Context) ([]model.DepthInterval, time.Duration, error) {
	out, elapsed, err := readAll[model.DepthInterval](ctx, s, depthLabel)
	return out, elapsed, storage.Wrap("read depth intervals", err)
}

// StoreSwapsInterval implements storage.Storage.
func (s *Store) StoreSwapsInterval(ctx context.Context, d model.SwapsInterval) (time.Duration, error) {
	elapsed, err := s.merge(ctx, swapsLabel, d.EndTime, d)
	return elapsed, storage.Wrap("store swaps interval", err)
}

// ReadSwapsIntervals implements storage.Storage.
func (s *Store) ReadSwapsIntervals(ctx context.Context) ([]model.SwapsInterval, time.Duration, error) {
	out, elapsed, err := readAll[model.SwapsInterval](ctx, s, swapsLabel)
	return out, elapsed, storage.Wrap("read swaps intervals", err)
}

// StoreRunePoolInterval implements storage.Storage.
func (s *Store) StoreRunePoolInterval(ctx context.Context, d model.RunePoolInterval) (time.Duration, error) {
	elapsed, err := s.merge(ctx, runePoolLabel, d.EndTime, d)
	return elapsed, storage.Wrap("store rune pool interval", err)
}

// ReadRunePoolIntervals implements storage.Storage.
func (s *Store) ReadRunePoolIntervals(ctx context.Context) ([]model.RunePoolInterval, time.Duration, error) {
	out, elapsed, err := readAll[model.RunePoolInterval](ctx, s, runePoolLabel)
	return out, elapsed, storage.Wrap("read rune pool intervals", err)
}
