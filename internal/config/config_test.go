package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	now = func() time.Time { return time.Unix(1726761600, 0) }
	defer func() { now = time.Now }()

	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "1726758000", want: 1726758000},
		{in: "2024-09-19T15:00:00Z", want: 1726758000},
		{in: "now", want: 1726761600},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoadFlagsAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("THORSYNC_POOL", "ETH.ETH")

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flags.String("backend", "", "")
	flags.StringArray("backend-args", nil, "")
	flags.String("from", "", "")
	flags.StringSlice("kinds", nil, "")
	require.NoError(t, flags.Parse([]string{
		"--backend", "relational",
		"--backend-args", "postgres://localhost/thor",
		"--from", "1726758000",
		"--kinds", "depth,swaps",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "relational", cfg.Backend)
	assert.Equal(t, []string{"postgres://localhost/thor"}, cfg.BackendArgs)
	assert.Equal(t, int64(1726758000), cfg.From)
	assert.Equal(t, []string{"depth", "swaps"}, cfg.Kinds)
	assert.Equal(t, "ETH.ETH", cfg.Pool)
	assert.Equal(t, "hour", cfg.Interval)
	assert.Equal(t, 400, cfg.PageSize)
	assert.Equal(t, 5, cfg.MaxRetries)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thorsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: multimodel
backend-args:
  - neo4j://localhost:7687
  - neo4j
  - secret
interval: day
from: 1726758000
to: 1726844400
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "multimodel", cfg.Backend)
	assert.Equal(t, []string{"neo4j://localhost:7687", "neo4j", "secret"}, cfg.BackendArgs)
	assert.Equal(t, "day", cfg.Interval)
	assert.Equal(t, int64(1726844400), cfg.To)
}

func TestLoadRejectsInvertedRange(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("THORSYNC_FROM", "200")
	t.Setenv("THORSYNC_TO", "100")

	_, err := Load("", nil)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadKeepsEmptyBackendArgs(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("THORSYNC_BACKEND_ARGS", "bolt://h:7687,neo4j,")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"bolt://h:7687", "neo4j", ""}, cfg.BackendArgs)
}

func TestLoadBackendArgFlagsKeepCommas(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flags.StringArray("backend-args", nil, "")
	require.NoError(t, flags.Parse([]string{
		"--backend-args", "clickhouse://h:9000/thor?settings=a,b",
		"--backend-args", "",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"clickhouse://h:9000/thor?settings=a,b", ""}, cfg.BackendArgs)
}
