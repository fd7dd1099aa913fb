package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

// ErrNoSnapshot indicates the snapshot file does not exist yet.
var ErrNoSnapshot = errors.New("snapshot not found")

// SaveSnapshot writes the dataset to path as CBOR. The write goes through a
// temp file and rename, so a crash mid-write never leaves a truncated
// snapshot behind.
func SaveSnapshot(path string, d *Data) error {
	payload, err := cbor.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a CBOR snapshot from path. Returns ErrNoSnapshot when
// the file does not exist.
func LoadSnapshot(path string) (*Data, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var d Data
	if err := cbor.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &d, nil
}
