// Package memory implements storage.Storage in process memory.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

// table holds one record kind keyed by end_time, remembering insert order.
type table[T any] struct {
	order []int64
	data  map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{data: make(map[int64]T)}
}

// put stores v unless key is already present.
func (t *table[T]) put(key int64, v T) {
	if _, exists := t.data[key]; exists {
		return
	}
	t.order = append(t.order, key)
	t.data[key] = v
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.data[key])
	}
	return out
}

// Store is an in-memory implementation of storage.Storage.
type Store struct {
	mu       sync.RWMutex
	depth    *table[model.DepthInterval]
	swaps    *table[model.SwapsInterval]
	earnings *table[model.EarningInterval]
	runePool *table[model.RunePoolInterval]
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		depth:    newTable[model.DepthInterval](),
		swaps:    newTable[model.SwapsInterval](),
		earnings: newTable[model.EarningInterval](),
		runePool: newTable[model.RunePoolInterval](),
	}
}

// Compile-time interface check.
var _ storage.Storage = (*Store)(nil)

func (s *Store) StoreDepthInterval(_ context.Context, interval model.DepthInterval) (time.Duration, error) {
	start := time.Now()
	s.mu.Lock()
	s.depth.put(interval.EndTime, interval)
	s.mu.Unlock()
	return time.Since(start), nil
}

func (s *Store) StoreSwapsInterval(_ context.Context, interval model.SwapsInterval) (time.Duration, error) {
	start := time.Now()
	s.mu.Lock()
	s.swaps.put(interval.EndTime, interval)
	s.mu.Unlock()
	return time.Since(start), nil
}

func (s *Store) StoreEarningInterval(_ context.Context, interval model.EarningInterval) (time.Duration, error) {
	start := time.Now()
	// Pools is a slice; copy it so later caller mutation cannot reach stored state.
	interval.Pools = slices.Clone(interval.Pools)
	s.mu.Lock()
	s.earnings.put(interval.EndTime, interval)
	s.mu.Unlock()
	return time.Since(start), nil
}

func (s *Store) StoreRunePoolInterval(_ context.Context, interval model.RunePoolInterval) (time.Duration, error) {
	start := time.Now()
	s.mu.Lock()
	s.runePool.put(interval.EndTime, interval)
	s.mu.Unlock()
	return time.Since(start), nil
}

func (s *Store) ReadDepthIntervals(_ context.Context) ([]model.DepthInterval, time.Duration, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.depth.all(), time.Since(start), nil
}

func (s *Store) ReadSwapsIntervals(_ context.Context) ([]model.SwapsInterval, time.Duration, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.swaps.all(), time.Since(start), nil
}

func (s *Store) ReadEarningIntervals(_ context.Context) ([]model.EarningInterval, time.Duration, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.earnings.all()
	for i := range out {
		out[i].Pools = slices.Clone(out[i].Pools)
	}
	return out, time.Since(start), nil
}

func (s *Store) ReadRunePoolIntervals(_ context.Context) ([]model.RunePoolInterval, time.Duration, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runePool.all(), time.Since(start), nil
}

func (s *Store) Backend() string {
	return "memory"
}

func (s *Store) Close(_ context.Context) error {
	return nil
}
