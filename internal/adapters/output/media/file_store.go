package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ output.MediaStore = (*FileStore)(nil)

// FileStore struct - Output adapter writing generated media under one directory
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore func - Creates the media directory when missing
func NewFileStore(dir string) (*FileStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &FileStore{dir: abs, now: time.Now}, nil
}

// Dir returns the absolute media directory
func (s *FileStore) Dir() string {
	return s.dir
}

// SaveAudio writes audio_<unix>_<id8>.<format> and returns its path
func (s *FileStore) SaveAudio(data []byte, format string) (string, error) {
	return s.save("audio", data, format)
}

func (s *FileStore) save(prefix string, data []byte, format string) (string, error) {
	format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if format == "" || strings.ContainsAny(format, `/\`) {
		return "", fmt.Errorf("invalid media format %q", format)
	}
	name := fmt.Sprintf("%s_%d_%s.%s", prefix, s.now().Unix(), uuid.NewString()[:8], format)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logrus.Errorln(err)
		return "", fmt.Errorf("failed to save %s: %w", prefix, err)
	}
	return path, nil
}

// Delete removes a stored file. URLs, paths outside the directory and
// files already gone are ignored.
func (s *FileStore) Delete(path string) error {
	if !s.owns(path) {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) owns(path string) bool {
	if path == "" || strings.Contains(path, "://") {
		return false
	}
	rel, err := filepath.Rel(s.dir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// Cleanup removes regular files last modified before the cutoff
func (s *FileStore) Cleanup(before time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read media directory: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(before) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			logrus.Warnf("Failed to remove media file %s: %v", e.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
