// Package mediastore owns the flat directory of uploaded photo files.
//
// Storage filenames are opaque keys, never paths: all reads go through an
// os.Root sandbox so a requested name cannot escape the upload directory,
// including via "../" sequences or symlinks.
package mediastore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors surfaced to the HTTP boundary.
var (
	ErrNoFile          = errors.New("no file provided")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNotFound        = errors.New("file not found")
)

// allowedExtensions is the set of accepted upload types, matched
// case-insensitively against the filename extension.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// storageSuffixFormat gives microsecond granularity, enough to keep two
// uploads of the same original name apart at interactive rates.
const storageSuffixFormat = "20060102150405.000000"

// Store is a flat file store rooted at a single directory.
type Store struct {
	baseDir string
	root    *os.Root
}

// New creates the upload directory if needed and opens a sandboxed root on it.
func New(baseDir string) (*Store, error) {
	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload directory sandbox: %w", err)
	}

	return &Store{baseDir: absPath, root: root}, nil
}

// Close releases the sandboxed root.
func (s *Store) Close() error {
	return s.root.Close()
}

// BaseDir returns the absolute upload directory path.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// AllowedExtension reports whether name carries an accepted image extension.
// Names without an extension are rejected.
func AllowedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return allowedExtensions[ext]
}

// sanitizeBase strips path components and collapses anything outside
// [A-Za-z0-9._-] to an underscore.
func sanitizeBase(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// StorageName derives a unique storage filename from an uploaded name: the
// sanitized base gets a timestamp suffix appended before the extension.
func StorageName(originalName string, now time.Time) string {
	clean := sanitizeBase(originalName)
	ext := filepath.Ext(clean)
	base := strings.TrimSuffix(clean, ext)
	suffix := strings.ReplaceAll(now.UTC().Format(storageSuffixFormat), ".", "")
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}

// Save validates the original filename, writes the payload under a fresh
// storage name and returns that name. Nothing is written when validation
// fails.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	if originalName == "" {
		return "", ErrNoFile
	}
	if !AllowedExtension(originalName) {
		return "", ErrUnsupportedType
	}

	name := StorageName(originalName, time.Now())
	dst, err := s.root.Create(name)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload file: %w", err)
	}

	return name, nil
}

// Open returns a reader for a stored file. The name is treated as an opaque
// key; anything that looks like a path is refused before touching the
// filesystem.
func (s *Store) Open(name string) (fs.File, error) {
	if name == "" || name == "." || name == ".." ||
		name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return nil, ErrNotFound
	}

	f, err := s.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open stored file %q: %w", name, err)
	}
	return f, nil
}
