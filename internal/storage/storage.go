package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// SnapshotFileName is the durable snapshot file name.
const SnapshotFileName = "tournament-data.json"

// CorruptStateError indicates that a snapshot file exists but could not
// be parsed into the expected id → record shape. The file is left in
// place; discarding it is an explicit user decision.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("snapshot file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// PersistenceError indicates that the new snapshot could not be written
// to durable storage.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("writing snapshot %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Storage handles persistence of tournament snapshots.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir, creating the
// directory if needed.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// SnapshotPath returns the path of the snapshot file.
func (s *Storage) SnapshotPath() string {
	return filepath.Join(s.dataDir, SnapshotFileName)
}

// LoadSnapshot loads the previous snapshot from disk. It returns
// (nil, nil) when no snapshot exists yet, which is the first-run
// condition, and a *CorruptStateError when the file exists but cannot
// be parsed.
func (s *Storage) LoadSnapshot() (*tournament.Snapshot, error) {
	path := s.SnapshotPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		// An I/O failure is not a corrupt snapshot; the file may be
		// perfectly fine once it is readable again.
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snapshot tournament.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, &CorruptStateError{Path: path, Err: err}
	}

	if snapshot.Tournaments == nil {
		snapshot.Tournaments = make(map[string]tournament.Record)
	}

	return &snapshot, nil
}

// SaveSnapshot overwrites the durable snapshot with the given one. The
// data is written to a temp file in the same directory and renamed into
// place, so a crash mid-write leaves the previous snapshot intact.
func (s *Storage) SaveSnapshot(snapshot *tournament.Snapshot) error {
	path := s.SnapshotPath()

	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(s.dataDir, SnapshotFileName+".tmp-*")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Err: err}
	}

	return nil
}
