// Package parsers turns sheet exports into catalog items.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RowReader reads a sheet export into raw rows.
type RowReader interface {
	ReadRows(r io.Reader) ([][]string, error)
}

// ForFile returns the appropriate row reader based on file extension.
func ForFile(filename string) RowReader {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONRowReader{}
	case ".csv":
		return &CSVRowReader{}
	default:
		return nil
	}
}
