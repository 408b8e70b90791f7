// Package storagetest holds a conformance suite every storage.Storage
// implementation is expected to pass.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

// Run exercises s against the storage contract. s must be empty when Run
// starts; subtests share it and use disjoint end_time ranges.
func Run(t *testing.T, s storage.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("EmptyRead", func(t *testing.T) {
		depth, elapsed, err := s.ReadDepthIntervals(ctx)
		require.NoError(t, err)
		assert.Empty(t, depth)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))

		earnings, _, err := s.ReadEarningIntervals(ctx)
		require.NoError(t, err)
		assert.Empty(t, earnings)
	})

	t.Run("DepthRoundTrip", func(t *testing.T) {
		want := Depth(1_700_003_600)
		elapsed, err := s.StoreDepthInterval(ctx, want)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))

		got, elapsed, err := s.ReadDepthIntervals(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		assert.Equal(t, []model.DepthInterval{want}, byEndTime(got, want.EndTime, depthKey))
	})

	t.Run("SwapsRoundTrip", func(t *testing.T) {
		want := Swaps(1_700_003_600)
		_, err := s.StoreSwapsInterval(ctx, want)
		require.NoError(t, err)

		got, _, err := s.ReadSwapsIntervals(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.SwapsInterval{want}, byEndTime(got, want.EndTime, swapsKey))
	})

	t.Run("EarningRoundTripKeepsPoolOrder", func(t *testing.T) {
		want := Earning(1_700_003_600, 4)
		_, err := s.StoreEarningInterval(ctx, want)
		require.NoError(t, err)

		got, _, err := s.ReadEarningIntervals(ctx)
		require.NoError(t, err)
		matched := byEndTime(got, want.EndTime, earningKey)
		require.Len(t, matched, 1)
		assert.Equal(t, want, matched[0])
	})

	t.Run("EarningWithoutPools", func(t *testing.T) {
		want := Earning(1_700_007_200, 0)
		_, err := s.StoreEarningInterval(ctx, want)
		require.NoError(t, err)

		got, _, err := s.ReadEarningIntervals(ctx)
		require.NoError(t, err)
		matched := byEndTime(got, want.EndTime, earningKey)
		require.Len(t, matched, 1)
		assert.Empty(t, matched[0].Pools)
		matched[0].Pools = nil
		assert.Equal(t, want, matched[0])
	})

	t.Run("RunePoolRoundTrip", func(t *testing.T) {
		want := RunePool(1_700_003_600)
		_, err := s.StoreRunePoolInterval(ctx, want)
		require.NoError(t, err)

		got, _, err := s.ReadRunePoolIntervals(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.RunePoolInterval{want}, byEndTime(got, want.EndTime, runePoolKey))
	})

	t.Run("StoreIsIdempotentOnEndTime", func(t *testing.T) {
		end := int64(1_700_100_000)

		depth := Depth(end)
		changed := depth
		changed.AssetDepth++
		for _, d := range []model.DepthInterval{depth, depth, changed} {
			_, err := s.StoreDepthInterval(ctx, d)
			require.NoError(t, err)
		}
		gotDepth, _, err := s.ReadDepthIntervals(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.DepthInterval{depth}, byEndTime(gotDepth, end, depthKey))

		swaps := Swaps(end)
		for i := 0; i < 2; i++ {
			_, err := s.StoreSwapsInterval(ctx, swaps)
			require.NoError(t, err)
		}
		gotSwaps, _, err := s.ReadSwapsIntervals(ctx)
		require.NoError(t, err)
		assert.Len(t, byEndTime(gotSwaps, end, swapsKey), 1)

		earning := Earning(end, 2)
		for i := 0; i < 2; i++ {
			_, err := s.StoreEarningInterval(ctx, earning)
			require.NoError(t, err)
		}
		gotEarnings, _, err := s.ReadEarningIntervals(ctx)
		require.NoError(t, err)
		matched := byEndTime(gotEarnings, end, earningKey)
		require.Len(t, matched, 1)
		assert.Equal(t, earning.Pools, matched[0].Pools)

		rp := RunePool(end)
		for i := 0; i < 2; i++ {
			_, err := s.StoreRunePoolInterval(ctx, rp)
			require.NoError(t, err)
		}
		gotRP, _, err := s.ReadRunePoolIntervals(ctx)
		require.NoError(t, err)
		assert.Len(t, byEndTime(gotRP, end, runePoolKey), 1)
	})

	t.Run("CancelledStoreLeavesOtherKindsIntact", func(t *testing.T) {
		end := int64(1_700_200_000)
		depth := Depth(end)
		_, err := s.StoreDepthInterval(ctx, depth)
		require.NoError(t, err)

		before, _, err := s.ReadDepthIntervals(ctx)
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		// The outcome depends on whether the backend honours cancellation;
		// either way depth rows must be untouched.
		_, _ = s.StoreSwapsInterval(cancelled, Swaps(end))

		after, _, err := s.ReadDepthIntervals(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, before, after)
	})
}

func depthKey(d model.DepthInterval) int64       { return d.EndTime }
func swapsKey(d model.SwapsInterval) int64       { return d.EndTime }
func earningKey(d model.EarningInterval) int64   { return d.EndTime }
func runePoolKey(d model.RunePoolInterval) int64 { return d.EndTime }

func byEndTime[T any](items []T, end int64, key func(T) int64) []T {
	var out []T
	for _, item := range items {
		if key(item) == end {
			out = append(out, item)
		}
	}
	return out
}
