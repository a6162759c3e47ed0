// Package assets serves image and logo files from a local directory.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/NewsContentAPI/internal/infra/metrics"
	"github.com/NewsContentAPI/pkg/logging"
)

// FileStore resolves single-segment filenames inside a root directory.
type FileStore struct {
	root    string
	fsys    fs.FS
	sampler *logging.ErrorSampler
}

func NewFileStore(root string, sampler *logging.ErrorSampler) *FileStore {
	if sampler == nil {
		sampler = logging.NewErrorSampler(0)
	}
	return &FileStore{
		root:    root,
		fsys:    os.DirFS(root),
		sampler: sampler,
	}
}

// Root returns the directory the store reads from.
func (s *FileStore) Root() string {
	return s.root
}

// Check reports whether the root exists and is a directory.
func (s *FileStore) Check() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("static dir %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static dir %s is not a directory", s.root)
	}
	return nil
}

// Open returns the named file and its info. The caller closes the file.
// Names that are not a plain filename, that are missing, or that name a
// directory all yield domain.ErrNotFound.
func (s *FileStore) Open(name string) (fs.File, fs.FileInfo, error) {
	if !validName(name) {
		s.miss(name, "invalid name")
		return nil, nil, fmt.Errorf("asset %q: %w", name, domain.ErrNotFound)
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			s.miss(name, "missing")
			return nil, nil, fmt.Errorf("asset %q: %w", name, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to open asset %q: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to stat asset %q: %w", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		s.miss(name, "directory")
		return nil, nil, fmt.Errorf("asset %q: %w", name, domain.ErrNotFound)
	}

	// a file that shows up again gets its next miss logged
	s.sampler.Reset(missKey(name))
	return f, info, nil
}

func missKey(name string) string {
	return "asset_miss:" + name
}

func (s *FileStore) miss(name, reason string) {
	metrics.StaticAssetMisses.Inc()
	key := missKey(name)
	if s.sampler.ShouldLog(key) {
		slog.Warn("Static asset not found", "filename", name, "reason", reason, "occurrences", s.sampler.GetCount(key))
	}
}

// validName accepts a single path element that stays inside the root.
func validName(name string) bool {
	if name == "" || name == "." || strings.ContainsAny(name, `/\`) {
		return false
	}
	return fs.ValidPath(name)
}
