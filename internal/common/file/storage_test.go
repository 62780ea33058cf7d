package file

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage() *Storage {
	return NewStorage(zerolog.Nop())
}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestStorage_Read(t *testing.T) {
	path := writeFixture(t, "input.txt", []byte("hello world"))

	content, err := newTestStorage().Read(context.Background(), path, DefaultReadOptions())

	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestStorage_Read_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.txt") },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, fs.ErrNotExist)
				assert.False(t, common.IsFileTooLarge(err))
			},
		},
		{
			name:  "directory",
			setup: func(t *testing.T) string { return t.TempDir() },
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "is a directory")
			},
		},
		{
			name: "one byte over the ceiling",
			setup: func(t *testing.T) string {
				return writeFixture(t, "big.log", []byte(strings.Repeat("x", int(MaxFileSizeBytes)+1)))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, common.IsFileTooLarge(err))
				assert.Equal(t, "File too large (5.0 MB). Maximum size is 5 MB. Open a smaller file or use another tool.", err.Error())
			},
		},
		{
			name:  "invalid utf-8",
			setup: func(t *testing.T) string { return writeFixture(t, "binary.bin", []byte{0xff, 0xfe, 0x00}) },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidUTF8)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := newTestStorage().Read(context.Background(), tt.setup(t), DefaultReadOptions())

			require.Error(t, err)
			assert.Empty(t, content)
			tt.check(t, err)
		})
	}
}

func TestStorage_Read_ExactlyAtCeiling(t *testing.T) {
	path := writeFixture(t, "limit.log", []byte(strings.Repeat("y", int(MaxFileSizeBytes))))

	content, err := newTestStorage().Read(context.Background(), path, DefaultReadOptions())

	require.NoError(t, err)
	assert.Len(t, content, int(MaxFileSizeBytes))
}

func TestReadText_GrownPastCeilingReportsFileSize(t *testing.T) {
	path := writeFixture(t, "grown.log", []byte(strings.Repeat("z", 3*1024*1024)))

	_, err := readText(path, ReadOptions{MaxSize: 1024 * 1024, BufferSize: 4096})

	var tooLarge *common.FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.EqualValues(t, 3*1024*1024, tooLarge.Size)
	assert.Equal(t, "File too large (3.0 MB). Maximum size is 1 MB. Open a smaller file or use another tool.", err.Error())
}

func TestStorage_Read_CancelledContext(t *testing.T) {
	path := writeFixture(t, "input.txt", []byte("data"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The read may win the race with cancellation; it must never return
	// content together with an error.
	content, err := newTestStorage().Read(ctx, path, DefaultReadOptions())
	if err != nil {
		assert.Empty(t, content)
		assert.ErrorIs(t, err, context.Canceled)
	} else {
		assert.Equal(t, "data", content)
	}
}

func TestReadBounded(t *testing.T) {
	content, err := ReadBounded(strings.NewReader("abc"), "<stdin>", 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", content)

	_, err = ReadBounded(strings.NewReader("abcd"), "<stdin>", 3)
	assert.True(t, common.IsFileTooLarge(err))

	content, err = ReadBounded(strings.NewReader("no ceiling"), "<stdin>", 0)
	require.NoError(t, err)
	assert.Equal(t, "no ceiling", content)
}

func TestStorage_Write(t *testing.T) {
	store := newTestStorage()
	path := writeFixture(t, "out.txt", []byte("a much longer previous body"))

	require.NoError(t, store.Write(context.Background(), path, "short", DefaultWriteOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestStorage_Write_CreateDirs(t *testing.T) {
	store := newTestStorage()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

	opts := DefaultWriteOptions()
	require.Error(t, store.Write(context.Background(), path, "x", opts))

	opts.CreateDirs = true
	opts.Timeout = time.Second
	require.NoError(t, store.Write(context.Background(), path, "x", opts))
	assert.True(t, store.Exists(path))
}

func TestStorage_EnsureDir_ExistingFile(t *testing.T) {
	path := writeFixture(t, "plain.txt", []byte("x"))

	err := newTestStorage().EnsureDir(path, 0755)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exists but is not a directory")
}
