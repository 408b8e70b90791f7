package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thorchainStore/internal/config"
	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read stored intervals and report counts and read latency",
		RunE:  runRead,
	}
	addBackendFlags(cmd)
	return cmd
}

func runRead(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	kinds, err := model.ParseKinds(cfg.Kinds)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStorage(ctx, cfg, nil, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	for _, kind := range kinds {
		count, last, elapsed, err := readKind(ctx, store, kind)
		if err != nil {
			return fmt.Errorf("read %s: %w", kind, err)
		}
		logger.Debug("kind read", zap.String("kind", kind.String()), zap.Int("records", count))
		printRead(cmd.OutOrStdout(), kind, count, last, elapsed)
	}
	return nil
}

// readKind loads every record of kind and returns the count, the latest
// end_time and the adapter's read latency.
func readKind(ctx context.Context, s storage.Storage, kind model.Kind) (int, int64, time.Duration, error) {
	switch kind {
	case model.KindDepth:
		items, elapsed, err := s.ReadDepthIntervals(ctx)
		return len(items), latest(items, func(d model.DepthInterval) int64 { return d.EndTime }), elapsed, err
	case model.KindSwaps:
		items, elapsed, err := s.ReadSwapsIntervals(ctx)
		return len(items), latest(items, func(d model.SwapsInterval) int64 { return d.EndTime }), elapsed, err
	case model.KindEarnings:
		items, elapsed, err := s.ReadEarningIntervals(ctx)
		return len(items), latest(items, func(d model.EarningInterval) int64 { return d.EndTime }), elapsed, err
	case model.KindRunePool:
		items, elapsed, err := s.ReadRunePoolIntervals(ctx)
		return len(items), latest(items, func(d model.RunePoolInterval) int64 { return d.EndTime }), elapsed, err
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s", model.ErrUnknownKind, kind)
	}
}

func latest[T any](items []T, endOf func(T) int64) int64 {
	var last int64
	for _, item := range items {
		if end := endOf(item); end > last {
			last = end
		}
	}
	return last
}

func printRead(w io.Writer, kind model.Kind, count int, last int64, elapsed time.Duration) {
	fmt.Fprintf(w, "%-9s records=%d last_end_time=%d read_elapsed=%s\n", kind, count, last, elapsed)
}
