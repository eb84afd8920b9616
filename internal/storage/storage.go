package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Sink stores an uploaded file under a caller-chosen name and returns the
// reference to persist.
type Sink interface {
	Save(ctx context.Context, r io.Reader, name string) (string, error)
}

// Local writes files into a single directory on disk.
type Local struct {
	dir string
}

// Ensure Local implements Sink
var _ Sink = (*Local)(nil)

// NewLocal creates dir if needed and returns a sink rooted at it.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the root directory.
func (l *Local) Dir() string {
	return l.dir
}

// Save copies r into <dir>/<name>. name must be a bare file name.
func (l *Local) Save(ctx context.Context, r io.Reader, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	path := filepath.Join(l.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path, nil
}

// GenerateName builds "<prefix>_<32 hex chars><ext>", keeping only the
// extension of the uploaded file's original name.
func GenerateName(prefix, original string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + token + Extension(original)
}

// Extension returns the extension of a client-supplied file name. Anything
// that is not a plain dot-alphanumeric suffix is dropped.
func Extension(original string) string {
	ext := filepath.Ext(filepath.Base(strings.ReplaceAll(original, "\\", "/")))
	if len(ext) < 2 || len(ext) > 16 {
		return ""
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
