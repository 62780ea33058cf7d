package file

import (
	"io/fs"
	"time"
)

// MaxFileSizeBytes is the read ceiling. Larger files are rejected instead of
// being loaded into an editor buffer.
const MaxFileSizeBytes int64 = 5 * 1024 * 1024

const (
	defaultBufferSize             = 64 * 1024
	defaultTimeout                = 30 * time.Second
	defaultFilePerm   fs.FileMode = 0644
	defaultDirPerm    fs.FileMode = 0755
)

// ReadOptions bounds a single read
type ReadOptions struct {
	MaxSize    int64         // 0 disables the ceiling
	BufferSize int           // 0 reads unbuffered
	Timeout    time.Duration // 0 waits for the caller's context only
}

// WriteOptions configures a single write
type WriteOptions struct {
	CreateDirs bool
	Perm       fs.FileMode
	Timeout    time.Duration
}

// DefaultReadOptions enforces MaxFileSizeBytes
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		MaxSize:    MaxFileSizeBytes,
		BufferSize: defaultBufferSize,
		Timeout:    defaultTimeout,
	}
}

// DefaultWriteOptions writes 0644 files and expects the parent to exist
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Perm:    defaultFilePerm,
		Timeout: defaultTimeout,
	}
}
