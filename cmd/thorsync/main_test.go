package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorchainStore/internal/model"
	"thorchainStore/internal/storage/memory"
	"thorchainStore/internal/storage/storagetest"
)

func TestRunCommandSyncsIntoMemory(t *testing.T) {
	chdir(t, t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/history/runepool":
			fmt.Fprint(w, `{"intervals":[{"count":"88","startTime":"1726758000","endTime":"1726761600","units":"512"}]}`)
		case "/v2/history/swaps":
			fmt.Fprint(w, `{"intervals":[{"averageSlip":"4.5","startTime":"1726758000","endTime":"1726761600","totalCount":"91"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{
		"run",
		"--backend", "memory",
		"--midgard-url", srv.URL,
		"--kinds", "runepool,swaps",
		"--from", "1726758000",
		"--page-size", "1",
		"--checkpoint-enabled=false",
		"--log-level", "error",
	})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "runepool  stored=1 last_end_time=1726761600")
	assert.Contains(t, out.String(), "swaps     stored=1 last_end_time=1726761600")
}

func TestRunCommandRejectsUnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--backend", "unknown", "--log-level", "error"})
	assert.Error(t, root.Execute())
}

func TestReadKind(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for _, end := range []int64{7200, 3600} {
		_, err := store.StoreEarningInterval(ctx, storagetest.Earning(end, 1))
		require.NoError(t, err)
	}

	count, last, _, err := readKind(ctx, store, model.KindEarnings)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(7200), last)

	count, last, _, err = readKind(ctx, store, model.KindDepth)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, last)
}

func TestRunCommandRequiresBackend(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--log-level", "error"})
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackendRequired)
}

func TestExportKind(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for _, end := range []int64{3600, 7200, 10800} {
		_, err := store.StoreDepthInterval(ctx, storagetest.Depth(end))
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "depth.jsonl")
	n, err := exportKind(ctx, store, model.KindDepth, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int64{3600, 7200, 10800}, exportedEndTimes(t, path))
}

func TestExportTwiceReplacesFile(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for _, end := range []int64{3600, 7200} {
		_, err := store.StoreDepthInterval(ctx, storagetest.Depth(end))
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "depth.jsonl")
	for i := 0; i < 2; i++ {
		n, err := exportKind(ctx, store, model.KindDepth, path)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	}
	assert.Equal(t, []int64{3600, 7200}, exportedEndTimes(t, path))

	_, err := store.StoreDepthInterval(ctx, storagetest.Depth(10800))
	require.NoError(t, err)
	_, err = exportKind(ctx, store, model.KindDepth, path)
	require.NoError(t, err)
	assert.Equal(t, []int64{3600, 7200, 10800}, exportedEndTimes(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestExportCommandIsRepeatable(t *testing.T) {
	chdir(t, t.TempDir())

	for i := 0; i < 2; i++ {
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"export", "--backend", "memory", "--kinds", "swaps", "--out", "out", "--log-level", "error"})
		require.NoError(t, root.Execute())
	}
	assert.Empty(t, exportedEndTimes(t, filepath.Join("out", "swaps.jsonl")))
}

func exportedEndTimes(t *testing.T, path string) []int64 {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var ends []int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec struct {
			EndTime int64 `json:"endTime"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		ends = append(ends, rec.EndTime)
	}
	require.NoError(t, scanner.Err())
	return ends
}
