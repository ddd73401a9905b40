// Package store persists one snapshot per history file as JSON, the
// baseline for the next invocation's rate computation.
package store

import (
	"bufio"
	"encoding/json"
	"os"

	"ifrate/internal/domain"
)

// Exists reports whether path is a regular file. Directories and special
// files are not a usable store.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Save serializes the snapshot to path, overwriting it in place. The
// write is not atomic: a failure mid-write can leave a truncated store
// behind, which the next run then rejects on Load. Accepted limitation.
func Save(path string, snap *domain.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.StoreWriteError{Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		f.Close()
		return domain.StoreWriteError{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return domain.StoreWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return domain.StoreWriteError{Path: path, Err: err}
	}
	return nil
}

// Load reads back a snapshot written by Save. Any open, decode or type
// failure is a corrupt store; callers treat that as fatal rather than
// falling back to first-run behavior.
func Load(path string) (*domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.CorruptStoreError{Path: path, Err: err}
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))
	dec.DisallowUnknownFields()

	var snap domain.Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, domain.CorruptStoreError{Path: path, Err: err}
	}
	if snap.Devices == nil {
		snap.Devices = domain.DeviceRates{}
	}
	return &snap, nil
}
