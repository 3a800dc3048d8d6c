// Package fsutil holds small filesystem helpers shared by the codecs.
package fsutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// DefaultPerm is the mode of files written by WriteFile.
const DefaultPerm os.FileMode = 0o644

// WriteFile streams write's output into a temp file next to path and renames
// it over path once write and close succeed. Readers never observe a
// partially written file. Errors from the filesystem are returned unwrapped.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	tmp := TempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultPerm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WriteBytes writes data to path atomically.
func WriteBytes(path string, data []byte) error {
	return WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// TempName returns a hidden, unique sibling of path.
func TempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+ulid.Make().String()+".tmp")
}
