// Package storage defines the persistence contract shared by every backend
// adapter, plus adapter-independent helpers built on top of it.
package storage

import (
	"context"
	"time"

	"thorchainStore/internal/model"
)

// Storage persists and loads the four interval kinds.
//
// Store calls return the wall-clock duration of the backend call only.
// Storing a record whose EndTime already exists is a no-op, not an error.
// Read calls return every stored record of the kind in backend-native order.
type Storage interface {
	StoreDepthInterval(ctx context.Context, interval model.DepthInterval) (time.Duration, error)
	StoreSwapsInterval(ctx context.Context, interval model.SwapsInterval) (time.Duration, error)
	StoreEarningInterval(ctx context.Context, interval model.EarningInterval) (time.Duration, error)
	StoreRunePoolInterval(ctx context.Context, interval model.RunePoolInterval) (time.Duration, error)

	ReadDepthIntervals(ctx context.Context) ([]model.DepthInterval, time.Duration, error)
	ReadSwapsIntervals(ctx context.Context) ([]model.SwapsInterval, time.Duration, error)
	ReadEarningIntervals(ctx context.Context) ([]model.EarningInterval, time.Duration, error)
	ReadRunePoolIntervals(ctx context.Context) ([]model.RunePoolInterval, time.Duration, error)

	// Backend names the engine behind the adapter, e.g. "postgres".
	Backend() string

	// Close releases the adapter's connection.
	Close(ctx context.Context) error
}
