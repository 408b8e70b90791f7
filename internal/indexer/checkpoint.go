package indexer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"thorchainStore/internal/model"
)

// Checkpoint tracks the end_time of the last stored interval per kind.
type Checkpoint struct {
	LastEndTime map[string]int64 `json:"last_end_time"`
	UpdatedAt   string           `json:"updated_at"`
}

// CheckpointStore persists checkpoints to disk.
type CheckpointStore struct {
	path    string
	enabled bool
	current Checkpoint
	loaded  bool
}

func NewCheckpointStore(path string, enabled bool) *CheckpointStore {
	return &CheckpointStore{path: path, enabled: enabled && path != ""}
}

// Load reads the checkpoint file. A missing file is not an error.
func (c *CheckpointStore) Load() (Checkpoint, bool, error) {
	if !c.enabled {
		return Checkpoint{}, false, nil
	}

	stat, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.current = Checkpoint{LastEndTime: map[string]int64{}}
			c.loaded = true
			return Checkpoint{}, false, nil
		}
		return Checkpoint{}, false, fmt.Errorf("stat checkpoint: %w", err)
	}
	if stat.IsDir() {
		return Checkpoint{}, false, fmt.Errorf("checkpoint path is a directory")
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("read checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return Checkpoint{}, false, fmt.Errorf("parse checkpoint: %w", err)
	}
	if cp.LastEndTime == nil {
		cp.LastEndTime = map[string]int64{}
	}
	c.current = cp
	c.loaded = true
	return cp, true, nil
}

// LastEndTime returns the checkpointed end_time for kind.
func (c *CheckpointStore) LastEndTime(kind model.Kind) (int64, bool, error) {
	if !c.enabled {
		return 0, false, nil
	}
	if !c.loaded {
		if _, _, err := c.Load(); err != nil {
			return 0, false, err
		}
	}
	end, ok := c.current.LastEndTime[kind.String()]
	return end, ok, nil
}

// Save records endTime for kind and rewrites the file atomically.
func (c *CheckpointStore) Save(kind model.Kind, endTime int64) error {
	if !c.enabled {
		return nil
	}
	if !c.loaded {
		if _, _, err := c.Load(); err != nil {
			return err
		}
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create checkpoint dir: %w", err)
		}
	}

	c.current.LastEndTime[kind.String()] = endTime
	c.current.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	data, err := json.Marshal(c.current)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint tmp: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("rename checkpoint: %w", err)
	}

	return nil
}
