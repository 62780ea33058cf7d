// Package file reads and writes whole text buffers with a size ceiling,
// a timeout and cancellation.
package file

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/rs/zerolog"
)

// Storage is the only component that touches the filesystem
type Storage struct {
	logger zerolog.Logger
}

// NewStorage creates a Storage
func NewStorage(logger zerolog.Logger) *Storage {
	return &Storage{
		logger: logger.With().Str("component", "Storage").Logger(),
	}
}

// Exists reports whether anything exists at path
func (s *Storage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the whole content of path. It never returns partial content:
// oversized files fail with *common.FileTooLargeError, non UTF-8 files with
// ErrInvalidUTF8 and OS failures with the underlying *fs.PathError.
func (s *Storage) Read(ctx context.Context, path string, opts ReadOptions) (string, error) {
	if _, err := statForRead(path, opts.MaxSize); err != nil {
		return "", err
	}

	content, err := runBounded(ctx, opts.Timeout, "read", func() (string, error) {
		return readText(path, opts)
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File read")
	return content, nil
}

// Write replaces the content of path, creating the file when needed
func (s *Storage) Write(ctx context.Context, path, content string, opts WriteOptions) error {
	if opts.CreateDirs {
		if err := s.EnsureDir(filepath.Dir(path), defaultDirPerm); err != nil {
			return common.WrapError(err, "failed to create parent directories for: "+path)
		}
	}

	_, err := runBounded(ctx, opts.Timeout, "write", func() (struct{}, error) {
		return struct{}{}, writeText(path, content, opts.Perm)
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File written")
	return nil
}

// EnsureDir creates path and its parents. An existing non-directory at
// path is an error.
func (s *Storage) EnsureDir(path string, perm fs.FileMode) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return common.NewValidationError("path", path, "exists but is not a directory")
	case err == nil:
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return common.WrapError(err, "failed to create directory: "+path)
	}
	s.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}
