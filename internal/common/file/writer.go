package file

import (
	"io/fs"
	"os"
)

// writeText creates or truncates path and writes content to it
func writeText(path, content string, perm fs.FileMode) (err error) {
	if perm == 0 {
		perm = defaultFilePerm
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = f.WriteString(content)
	return err
}
