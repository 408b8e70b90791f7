package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"thorchainStore/internal/model"
)

func TestCheckpointRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")

	store := NewCheckpointStore(path, true)
	if err := store.Save(model.KindDepth, 7200); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(model.KindSwaps, 3600); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewCheckpointStore(path, true)
	cp, ok, err := reloaded.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if cp.LastEndTime["depth"] != 7200 || cp.LastEndTime["swaps"] != 3600 {
		t.Fatalf("unexpected checkpoint: %+v", cp)
	}

	end, ok, err := reloaded.LastEndTime(model.KindEarnings)
	if err != nil || ok || end != 0 {
		t.Fatalf("earnings should be unset: end=%d ok=%v err=%v", end, ok, err)
	}
}

func TestCheckpointDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	store := NewCheckpointStore(path, false)
	if err := store.Save(model.KindDepth, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("disabled store wrote %s", path)
	}
}

func TestCheckpointRejectsDirectory(t *testing.T) {
	store := NewCheckpointStore(t.TempDir(), true)
	if _, _, err := store.Load(); err == nil {
		t.Fatalf("expected error for directory path")
	}
}
