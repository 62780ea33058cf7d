package file

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/aleister1102/siftview/internal/common"
)

// ErrInvalidUTF8 is returned when content is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadBounded reads r to the end as UTF-8 text. It stops one byte past
// maxSize, so oversized input fails without being loaded whole. name only
// labels the size error.
func ReadBounded(r io.Reader, name string, maxSize int64) (string, error) {
	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", common.NewFileTooLargeError(name, int64(len(data)), maxSize)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// statForRead rejects directories and files already above the ceiling.
// OS errors come back unwrapped so their text reaches the user as-is.
func statForRead(path string, maxSize int64) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, common.NewValidationError("path", path, "is a directory, not a file")
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, common.NewFileTooLargeError(path, info.Size(), maxSize)
	}
	return info, nil
}

// readText opens path and reads it under the ceiling. The file may have
// grown since it was stat'ed, so the ceiling is checked again while reading
// and the size error then carries the size of the open file.
func readText(path string, opts ReadOptions) (content string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	var r io.Reader = f
	if opts.BufferSize > 0 {
		r = bufio.NewReaderSize(f, opts.BufferSize)
	}
	content, err = ReadBounded(r, path, opts.MaxSize)
	var tooLarge *common.FileTooLargeError
	if errors.As(err, &tooLarge) {
		if info, statErr := f.Stat(); statErr == nil && info.Size() > tooLarge.Size {
			tooLarge.Size = info.Size()
		}
	}
	return content, err
}
