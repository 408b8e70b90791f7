package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage/storagetest"
)

func TestStoreConformance(t *testing.T) {
	storagetest.Run(t, New())
}

func TestReadKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, end := range []int64{7200, 3600, 10800} {
		_, err := s.StoreRunePoolInterval(ctx, storagetest.RunePool(end))
		require.NoError(t, err)
	}

	got, _, err := s.ReadRunePoolIntervals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{7200, 3600, 10800}, []int64{got[0].EndTime, got[1].EndTime, got[2].EndTime})
}

func TestStoredPoolsAreDetachedFromCaller(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := storagetest.Earning(3600, 2)
	_, err := s.StoreEarningInterval(ctx, e)
	require.NoError(t, err)
	e.Pools[0].Pool = "MUTATED"

	got, _, err := s.ReadEarningIntervals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BTC.BTC", got[0].Pools[0].Pool)

	got[0].Pools[1] = model.Pool{}
	again, _, err := s.ReadEarningIntervals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ETH.ETH", again[0].Pools[1].Pool)
}
