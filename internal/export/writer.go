// Package export delivers conversion outputs to a directory or a zip stream.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirWriter writes files into a directory.
type DirWriter struct {
	dir string
}

// NewDirWriter creates dir if it does not exist.
func NewDirWriter(dir string) (*DirWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &DirWriter{dir: dir}, nil
}

func (d *DirWriter) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(d.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

// Path is where WriteFile puts name.
func (d *DirWriter) Path(name string) string {
	return filepath.Join(d.dir, filepath.Base(name))
}

// ZipWriter writes files as entries of a zip archive. Close must be called
// to flush the central directory.
type ZipWriter struct {
	zw *zip.Writer
}

func NewZipWriter(w io.Writer) *ZipWriter {
	return &ZipWriter{zw: zip.NewWriter(w)}
}

func (z *ZipWriter) WriteFile(name string, data []byte) error {
	f, err := z.zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating zip entry %s: %w", name, err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing zip entry %s: %w", name, err)
	}

	return nil
}

func (z *ZipWriter) Close() error {
	return z.zw.Close()
}
