package indexer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"thorchainStore/internal/midgard"
	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

// Fetcher is the upstream history source. *midgard.Client implements it.
type Fetcher interface {
	Depths(ctx context.Context, pool string, q midgard.Query) ([]model.DepthInterval, error)
	Swaps(ctx context.Context, q midgard.Query) ([]model.SwapsInterval, error)
	Earnings(ctx context.Context, q midgard.Query) ([]model.EarningInterval, error)
	RunePool(ctx context.Context, q midgard.Query) ([]model.RunePoolInterval, error)
}

// RunConfig holds runtime settings for the indexer.
type RunConfig struct {
	Kinds             []model.Kind
	Pool              string
	Interval          string
	From              int64
	To                int64
	Window            int64
	PageSize          int
	CheckpointPath    string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
}

// KindStats summarises one kind's sync.
type KindStats struct {
	Stored       int
	LastEndTime  int64
	StoreElapsed time.Duration
}

// Runner fetches interval history and writes it to storage.
type Runner struct {
	cfg        RunConfig
	fetcher    Fetcher
	storage    storage.Storage
	logger     *zap.Logger
	checkpoint *CheckpointStore
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, fetcher Fetcher, storageSink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = append([]model.Kind(nil), model.AllKinds...)
	}
	return &Runner{
		cfg:        cfg,
		fetcher:    fetcher,
		storage:    storageSink,
		logger:     logger,
		checkpoint: NewCheckpointStore(cfg.CheckpointPath, cfg.CheckpointEnabled),
	}
}

// Run syncs every configured kind in turn. Store calls are made one at a
// time and are never retried; the first store failure stops the run.
func (r *Runner) Run(ctx context.Context) (map[model.Kind]KindStats, error) {
	if r.fetcher == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}
	if r.storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if r.cfg.To != 0 && r.cfg.Window <= 0 {
		return nil, fmt.Errorf("window must be greater than zero")
	}
	for _, kind := range r.cfg.Kinds {
		if kind == model.KindDepth && r.cfg.Pool == "" {
			return nil, fmt.Errorf("pool is required to sync %s", kind)
		}
	}

	stats := make(map[model.Kind]KindStats, len(r.cfg.Kinds))
	for _, kind := range r.cfg.Kinds {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		st, err := r.runKind(ctx, kind)
		stats[kind] = st
		if err != nil {
			return stats, fmt.Errorf("sync %s: %w", kind, err)
		}
		r.logger.Info("kind complete",
			zap.String("kind", kind.String()),
			zap.Int("stored", st.Stored),
			zap.Int64("last_end_time", st.LastEndTime),
			zap.Duration("store_elapsed", st.StoreElapsed),
		)
	}
	return stats, nil
}

func (r *Runner) runKind(ctx context.Context, kind model.Kind) (KindStats, error) {
	var st KindStats

	from := r.cfg.From
	last, ok, err := r.checkpoint.LastEndTime(kind)
	if err != nil {
		return st, err
	}
	if ok && last > from {
		from = last
		r.logger.Info("resume from checkpoint", zap.String("kind", kind.String()), zap.Int64("from", from))
	}

	// Without an upper bound a single page starting at from is fetched.
	if r.cfg.To == 0 {
		return st, r.syncWindow(ctx, kind, midgard.Query{
			Interval: r.cfg.Interval,
			From:     from,
			PageSize: r.cfg.PageSize,
		}, &st)
	}

	to := r.cfg.To
	if from >= to {
		r.logger.Info("nothing to sync", zap.String("kind", kind.String()), zap.Int64("from", from), zap.Int64("to", to))
		return st, nil
	}

	windows, err := SplitRange(from, to, r.cfg.Window)
	if err != nil {
		return st, err
	}
	for _, w := range windows {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		q := midgard.Query{Interval: r.cfg.Interval, From: w.From, To: w.To, PageSize: r.cfg.PageSize}
		if err := r.syncWindow(ctx, kind, q, &st); err != nil {
			return st, err
		}
	}
	return st, nil
}

func (r *Runner) syncWindow(ctx context.Context, kind model.Kind, q midgard.Query, st *KindStats) error {
	r.logger.Info("fetch intervals",
		zap.String("kind", kind.String()),
		zap.Int64("from", q.From),
		zap.Int64("to", q.To),
	)

	var (
		stored  int
		lastEnd int64
		elapsed time.Duration
	)
	err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		stored, lastEnd, elapsed, err = r.fetchAndStore(ctx, kind, q)
		return err
	})
	st.Stored += stored
	st.StoreElapsed += elapsed
	if err != nil {
		return err
	}
	if stored == 0 {
		return nil
	}
	if lastEnd > st.LastEndTime {
		st.LastEndTime = lastEnd
	}
	return r.checkpoint.Save(kind, st.LastEndTime)
}

// fetchAndStore fetches one window and stores it. Store failures come back
// as *storeError so withRetry gives up on them.
func (r *Runner) fetchAndStore(ctx context.Context, kind model.Kind, q midgard.Query) (int, int64, time.Duration, error) {
	switch kind {
	case model.KindDepth:
		items, err := r.fetcher.Depths(ctx, r.cfg.Pool, q)
		if err != nil {
			return r.fetchFailed(kind, q, err)
		}
		return storeEach(ctx, items, r.storage.StoreDepthInterval, func(d model.DepthInterval) int64 { return d.EndTime })
	case model.KindSwaps:
		items, err := r.fetcher.Swaps(ctx, q)
		if err != nil {
			return r.fetchFailed(kind, q, err)
		}
		return storeEach(ctx, items, r.storage.StoreSwapsInterval, func(d model.SwapsInterval) int64 { return d.EndTime })
	case model.KindEarnings:
		items, err := r.fetcher.Earnings(ctx, q)
		if err != nil {
			return r.fetchFailed(kind, q, err)
		}
		return storeEach(ctx, items, r.storage.StoreEarningInterval, func(d model.EarningInterval) int64 { return d.EndTime })
	case model.KindRunePool:
		items, err := r.fetcher.RunePool(ctx, q)
		if err != nil {
			return r.fetchFailed(kind, q, err)
		}
		return storeEach(ctx, items, r.storage.StoreRunePoolInterval, func(d model.RunePoolInterval) int64 { return d.EndTime })
	default:
		return 0, 0, 0, &storeError{err: fmt.Errorf("%w: %s", model.ErrUnknownKind, kind)}
	}
}

func (r *Runner) fetchFailed(kind model.Kind, q midgard.Query, err error) (int, int64, time.Duration, error) {
	r.logger.Warn("fetch intervals failed",
		zap.Error(err),
		zap.String("kind", kind.String()),
		zap.Int64("from", q.From),
		zap.Int64("to", q.To),
	)
	return 0, 0, 0, err
}

// storeEach writes items in order and sums the reported store latency.
func storeEach[T any](
	ctx context.Context,
	items []T,
	store func(context.Context, T) (time.Duration, error),
	endOf func(T) int64,
) (int, int64, time.Duration, error) {
	var (
		total   time.Duration
		lastEnd int64
	)
	for i, item := range items {
		elapsed, err := store(ctx, item)
		total += elapsed
		if err != nil {
			return i, lastEnd, total, &storeError{err: err}
		}
		if end := endOf(item); end > lastEnd {
			lastEnd = end
		}
	}
	return len(items), lastEnd, total, nil
}

// storeError marks a failure that must not be retried.
type storeError struct {
	err error
}

func (e *storeError) Error() string   { return e.err.Error() }
func (e *storeError) Unwrap() error   { return e.err }
func (e *storeError) Temporary() bool { return false }
