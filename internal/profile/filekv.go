package profile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileKV is a KV backed by a single JSON object on disk. Writes use an
// atomic temp file + rename so a crash mid-write never corrupts the
// previous contents.
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV creates a file-backed KV at the given path. The file is
// created lazily on the first Set.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Get reads the value for key. A missing or unreadable file, or a key
// not present in it, yields ("", false).
func (f *FileKV) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", false
	}
	v, ok := entries[key]
	return v, ok
}

// Set stores the value for key, preserving other keys in the file.
func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		entries = map[string]string{}
	}
	entries[key] = value

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, f.path)
}

func (f *FileKV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MemKV is an in-memory KV for tests and hosts without durable storage.
type MemKV struct {
	entries map[string]string
	mu      sync.RWMutex

	// FailSet forces Set to report an error, for exercising the
	// best-effort write path.
	FailSet bool
}

// NewMemKV creates an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{entries: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (m *MemKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores the value for key.
func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return errors.New("storage quota exceeded")
	}
	m.entries[key] = value
	return nil
}
