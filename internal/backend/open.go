package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"thorchainStore/internal/storage"
	"thorchainStore/internal/storage/clickhouse"
	"thorchainStore/internal/storage/couchdb"
	"thorchainStore/internal/storage/memory"
	"thorchainStore/internal/storage/neo4j"
	"thorchainStore/internal/storage/postgres"
)

// Open validates cfg, connects to the backend and completes its handshake.
// The returned storage is ready for use; it is not retried on failure.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: no backend selected", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", cfg.Name()))

	var (
		s   storage.Storage
		err error
	)
	switch c := cfg.(type) {
	case PostgresConfig:
		s, err = openAs(postgres.Open(ctx, c.DSN, logger))
	case CouchDBConfig:
		s, err = openAs(couchdb.Open(ctx, c.URL, c.Database, logger))
	case Neo4jConfig:
		s, err = openAs(neo4j.Open(ctx, c.URI, c.Username, c.Password, logger))
	case ClickHouseConfig:
		s, err = openAs(clickhouse.Open(ctx, c.DSN, logger))
	case MemoryConfig:
		s = memory.New()
	default:
		return nil, fmt.Errorf("%w: unsupported config %T", ErrInvalidConfig, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Name(), err)
	}
	logger.Info("storage backend opened", zap.String("engine", s.Backend()))
	return s, nil
}

// openAs erases the concrete adapter type without turning a nil pointer into
// a non-nil interface.
func openAs[S storage.Storage](s S, err error) (storage.Storage, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
