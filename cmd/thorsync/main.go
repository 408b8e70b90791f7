package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"thorchainStore/internal/backend"
	"thorchainStore/internal/config"
	"thorchainStore/internal/indexer"
	"thorchainStore/internal/midgard"
	"thorchainStore/internal/model"
	"thorchainStore/internal/observability"
	"thorchainStore/internal/storage"
)

var errBackendRequired = fmt.Errorf("--backend is required (one of %s)", strings.Join(backend.Names(), ", "))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "thorsync",
		Short:        "THORChain interval history sync",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch interval history from Midgard and store it",
		RunE:  runSync,
	}

	addBackendFlags(runCmd)
	runCmd.Flags().String("midgard-url", midgard.DefaultURL, "Midgard base URL")
	runCmd.Flags().String("pool", "BTC.BTC", "pool for depth history")
	runCmd.Flags().String("interval", "hour", "bucket size (5min, hour, day, week, month, quarter, year)")
	runCmd.Flags().String("from", "", "start time (unix seconds or RFC3339)")
	runCmd.Flags().String("to", "", "end time (unix seconds, RFC3339 or now); empty fetches a single page")
	runCmd.Flags().Duration("window", 400*time.Hour, "time span fetched per request window")
	runCmd.Flags().Int("page-size", midgard.MaxCount, "intervals per request (max 400)")
	runCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	runCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	runCmd.Flags().Int("max-retries", 5, "maximum fetch retry attempts")
	runCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	runCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9102)")

	root.AddCommand(runCmd)
	root.AddCommand(newReadCmd())
	root.AddCommand(newExportCmd())

	return root
}

// addBackendFlags registers the flags every storage-facing command shares.
func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "", "storage backend (relational, document, multimodel, columnar, memory); required")
	cmd.Flags().StringArray("backend-args", nil, "backend argument, repeated in order: DSN, or url then database, or uri then user then password")
	cmd.Flags().StringSlice("kinds", nil, "interval kinds (depth, swaps, earnings, runepool); empty means all")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func runSync(cmd *cobra.Command, _ []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := observability.NewStorageMetrics(reg)
	if cfg.MetricsAddr != "" {
		shutdown := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer shutdown()
	}

	store, err := openStorage(ctx, cfg, metrics, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())
	if store.Backend() == "memory" {
		logger.Warn("memory backend keeps intervals only until the process exits")
	}

	client, err := midgard.NewClient(cfg.MidgardURL, midgard.WithLogger(logger))
	if err != nil {
		return err
	}

	runner := indexer.NewRunner(indexer.RunConfig{
		Kinds:             kinds,
		Pool:              cfg.Pool,
		Interval:          cfg.Interval,
		From:              cfg.From,
		To:                cfg.To,
		Window:            int64(cfg.Window.Seconds()),
		PageSize:          cfg.PageSize,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}, client, store, logger)

	logger.Info("sync start",
		zap.String("backend", store.Backend()),
		zap.String("midgard", cfg.MidgardURL),
		zap.String("pool", cfg.Pool),
		zap.String("interval", cfg.Interval),
		zap.Int64("from", cfg.From),
		zap.Int64("to", cfg.To),
		zap.Strings("kinds", cfg.Kinds),
		zap.Bool("checkpoint_enabled", cfg.CheckpointEnabled),
		zap.String("checkpoint", cfg.Checkpoint),
	)

	stats, err := runner.Run(ctx)
	for _, kind := range kinds {
		st, ok := stats[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-9s stored=%d last_end_time=%d store_elapsed=%s\n",
			kind, st.Stored, st.LastEndTime, st.StoreElapsed)
	}
	return err
}

// openStorage resolves the configured backend and wraps it with metrics.
func openStorage(ctx context.Context, cfg config.Config, metrics *observability.StorageMetrics, logger *zap.Logger) (storage.Storage, error) {
	if cfg.Backend == "" {
		return nil, errBackendRequired
	}
	backendCfg, err := backend.MatchDatabaseType(cfg.Backend, cfg.BackendArgs)
	if err != nil {
		return nil, err
	}
	store, err := backend.Open(ctx, backendCfg, logger)
	if err != nil {
		return nil, err
	}
	return storage.NewInstrumented(store, metrics, logger), nil
}

func serveMetrics(addr string, gatherer prometheus.Gatherer, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler(gatherer))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
