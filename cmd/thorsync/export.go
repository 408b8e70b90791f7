package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thorchainStore/internal/config"
	"thorchainStore/internal/model"
	"thorchainStore/internal/storage"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored intervals to JSONL files, one per kind",
		RunE:  runExport,
	}
	addBackendFlags(cmd)
	cmd.Flags().String("out", "./data", "output directory")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Out == "" {
		return fmt.Errorf("output directory is required")
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
		path := filepath.Join(cfg.Out, kind.String()+".jsonl")
		n, err := exportKind(ctx, store, kind, path)
		if err != nil {
			return fmt.Errorf("export %s: %w", kind, err)
		}
		logger.Info("kind exported", zap.String("kind", kind.String()), zap.Int("records", n), zap.String("path", path))
	}
	return nil
}

// exportKind reads every record of kind and writes them to path,
// replacing any earlier export.
func exportKind(ctx context.Context, s storage.Storage, kind model.Kind, path string) (int, error) {
	switch kind {
	case model.KindDepth:
		items, _, err := s.ReadDepthIntervals(ctx)
		if err != nil {
			return 0, err
		}
		return len(items), storage.WriteJSONL(path, items)
	case model.KindSwaps:
		items, _, err := s.ReadSwapsIntervals(ctx)
		if err != nil {
			return 0, err
		}
		return len(items), storage.WriteJSONL(path, items)
	case model.KindEarnings:
		items, _, err := s.ReadEarningIntervals(ctx)
		if err != nil {
			return 0, err
		}
		return len(items), storage.WriteJSONL(path, items)
	case model.KindRunePool:
		items, _, err := s.ReadRunePoolIntervals(ctx)
		if err != nil {
			return 0, err
		}
		return len(items), storage.WriteJSONL(path, items)
	default:
		return 0, fmt.Errorf("%w: %s", model.ErrUnknownKind, kind)
	}
}
