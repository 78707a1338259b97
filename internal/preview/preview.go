// Package preview provides the temp-file backed avatar preview source.
// Each session-created preview copies the chosen image into a scratch
// file; releasing the handle deletes it. Handles carry the session
// scheme marker so the profile core can tell them apart from persisted
// avatar URLs it does not own.
package preview

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/castdeck/castdeck/internal/profile"
)

// FileSource implements profile.ResourceSource over a scratch
// directory. Safe for concurrent use.
type FileSource struct {
	dir string

	mu    sync.Mutex
	paths map[profile.Handle]string
}

// NewFileSource creates a source writing previews under dir. When dir
// is empty the OS temp directory is used.
func NewFileSource(dir string) *FileSource {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "castdeck-previews")
	}
	return &FileSource{
		dir:   dir,
		paths: make(map[profile.Handle]string),
	}
}

// Create copies the image at source into a scratch file and returns a
// session-owned handle for it.
func (s *FileSource) Create(source string) (profile.Handle, error) {
	in, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("opening avatar source: %w", err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("creating preview dir: %w", err)
	}

	id := uuid.NewString()
	path := filepath.Join(s.dir, id+filepath.Ext(source))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("copying avatar: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing preview file: %w", err)
	}

	h := profile.Handle(profile.HandleScheme + id)
	s.mu.Lock()
	s.paths[h] = path
	s.mu.Unlock()
	return h, nil
}

// Release deletes the scratch file behind h. Unknown handles are
// ignored.
func (s *FileSource) Release(h profile.Handle) {
	s.mu.Lock()
	path, ok := s.paths[h]
	delete(s.paths, h)
	s.mu.Unlock()

	if ok {
		_ = os.Remove(path)
	}
}

// Path resolves a live handle to its scratch file, for display layers
// that want to inspect the image.
func (s *FileSource) Path(h profile.Handle) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok := s.paths[h]
	return path, ok
}
