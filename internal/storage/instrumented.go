package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"thorchainStore/internal/model"
	"thorchainStore/internal/observability"
)

// Instrumented decorates a Storage with latency metrics and debug logging.
// It forwards every call unchanged and reports the adapter's own elapsed
// time, so wrapping does not alter the latency callers see.
type Instrumented struct {
	inner   Storage
	metrics *observability.StorageMetrics
	logger  *zap.Logger
}

// NewInstrumented wraps inner. metrics and logger may be nil.
func NewInstrumented(inner Storage, metrics *observability.StorageMetrics, logger *zap.Logger) *Instrumented {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Instrumented{inner: inner, metrics: metrics, logger: logger}
}

var _ Storage = (*Instrumented)(nil)

func (s *Instrumented) observe(kind model.Kind, op string, elapsed time.Duration, records int, err error) {
	s.metrics.Observe(s.inner.Backend(), kind.String(), op, elapsed, records, err)
	if err != nil {
		s.logger.Warn("storage op failed",
			zap.String("backend", s.inner.Backend()),
			zap.String("kind", kind.String()),
			zap.String("op", op),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("storage op",
		zap.String("backend", s.inner.Backend()),
		zap.String("kind", kind.String()),
		zap.String("op", op),
		zap.Int("records", records),
		zap.Duration("elapsed", elapsed),
	)
}

func (s *Instrumented) StoreDepthInterval(ctx context.Context, interval model.DepthInterval) (time.Duration, error) {
	elapsed, err := s.inner.StoreDepthInterval(ctx, interval)
	s.observe(model.KindDepth, "store", elapsed, 1, err)
	return elapsed, err
}

func (s *Instrumented) StoreSwapsInterval(ctx context.Context, interval model.SwapsInterval) (time.Duration, error) {
	elapsed, err := s.inner.StoreSwapsInterval(ctx, interval)
	s.observe(model.KindSwaps, "store", elapsed, 1, err)
	return elapsed, err
}

func (s *Instrumented) StoreEarningInterval(ctx context.Context, interval model.EarningInterval) (time.Duration, error) {
	elapsed, err := s.inner.StoreEarningInterval(ctx, interval)
	s.observe(model.KindEarnings, "store", elapsed, 1, err)
	return elapsed, err
}

func (s *Instrumented) StoreRunePoolInterval(ctx context.Context, interval model.RunePoolInterval) (time.Duration, error) {
	elapsed, err := s.inner.StoreRunePoolInterval(ctx, interval)
	s.observe(model.KindRunePool, "store", elapsed, 1, err)
	return elapsed, err
}

func (s *Instrumented) ReadDepthIntervals(ctx context.Context) ([]model.DepthInterval, time.Duration, error) {
	out, elapsed, err := s.inner.ReadDepthIntervals(ctx)
	s.observe(model.KindDepth, "read", elapsed, len(out), err)
	return out, elapsed, err
}

func (s *Instrumented) ReadSwapsIntervals(ctx context.Context) ([]model.SwapsInterval, time.Duration, error) {
	out, elapsed, err := s.inner.ReadSwapsIntervals(ctx)
	s.observe(model.KindSwaps, "read", elapsed, len(out), err)
	return out, elapsed, err
}

func (s *Instrumented) ReadEarningIntervals(ctx context.Context) ([]model.EarningInterval, time.Duration, error) {
	out, elapsed, err := s.inner.ReadEarningIntervals(ctx)
	s.observe(model.KindEarnings, "read", elapsed, len(out), err)
	return out, elapsed, err
}

func (s *Instrumented) ReadRunePoolIntervals(ctx context.Context) ([]model.RunePoolInterval, time.Duration, error) {
	out, elapsed, err := s.inner.ReadRunePoolIntervals(ctx)
	s.observe(model.KindRunePool, "read", elapsed, len(out), err)
	return out, elapsed, err
}

func (s *Instrumented) Backend() string {
	return s.inner.Backend()
}

func (s *Instrumented) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}
