// File-backed key/value store. Each key maps to one file in the data
// directory; writes are atomic via the temp-file, fsync, rename pattern.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileKV stores values as files named <key>.json under a directory.
type fileKV struct {
	dir    string
	closed bool
}

// openFileKV creates a file-backed KV rooted at dir. The directory must
// already exist.
func openFileKV(dir string) (*fileKV, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", dir)
	}
	return &fileKV{dir: dir}, nil
}

func (f *fileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the value for key. A missing file means the key is absent, not
// an error.
func (f *fileKV) Get(key string) (string, bool, error) {
	if f.closed {
		return "", false, ErrStoreClosed
	}
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes the value for key atomically: the document is written to a temp
// file in the same directory, synced, then renamed over the target.
func (f *fileKV) Set(key, value string) error {
	if f.closed {
		return ErrStoreClosed
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Close marks the store closed. There are no open handles to release.
func (f *fileKV) Close() error {
	f.closed = true
	return nil
}
