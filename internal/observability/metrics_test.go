package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStorageMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorageMetrics(reg)

	m.Observe("postgres", "depth", "store", 3*time.Millisecond, 1, nil)
	m.Observe("postgres", "depth", "store", 2*time.Millisecond, 1, nil)
	m.Observe("postgres", "depth", "store", 0, 0, errors.New("boom"))
	m.Observe("postgres", "depth", "read", time.Millisecond, 12, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Records.WithLabelValues("postgres", "depth", "store")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.Records.WithLabelValues("postgres", "depth", "read")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OpErrors.WithLabelValues("postgres", "depth", "store")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.OpDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *StorageMetrics
	assert.NotPanics(t, func() {
		m.Observe("memory", "swaps", "store", time.Millisecond, 1, nil)
	})
}
