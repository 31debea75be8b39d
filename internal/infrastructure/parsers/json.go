package parsers

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// JSONRowReader reads rows stored as a JSON array of string arrays.
type JSONRowReader struct{}

// ReadRows decodes the rows from r.
func (p *JSONRowReader) ReadRows(r io.Reader) ([][]string, error) {
	var rows [][]string

	decoder := sonic.ConfigDefault.NewDecoder(r)
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("parsing JSON rows: %w", err)
	}

	return rows, nil
}
