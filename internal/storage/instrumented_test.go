package storage_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"thorchainStore/internal/observability"
	"thorchainStore/internal/storage"
	"thorchainStore/internal/storage/memory"
	"thorchainStore/internal/storage/storagetest"
)

func TestInstrumentedConformance(t *testing.T) {
	storagetest.Run(t, storage.NewInstrumented(memory.New(), nil, zaptest.NewLogger(t)))
}

func TestInstrumentedRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := observability.NewStorageMetrics(prometheus.NewRegistry())
	s := storage.NewInstrumented(memory.New(), metrics, zaptest.NewLogger(t))

	for _, end := range []int64{3600, 7200} {
		_, err := s.StoreEarningInterval(ctx, storagetest.Earning(end, 1))
		require.NoError(t, err)
	}
	got, _, err := s.ReadEarningIntervals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "memory", s.Backend())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Records.WithLabelValues("memory", "earnings", "store")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Records.WithLabelValues("memory", "earnings", "read")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.OpErrors.WithLabelValues("memory", "earnings", "store")))
}
