package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVRowReader reads CSV sheet exports. Rows may have different lengths.
type CSVRowReader struct{}

// ReadRows reads all records from r. Errors name the input line, which can
// differ from the record number when quoted cells span several lines.
func (p *CSVRowReader) ReadRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	lastLine := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("record starting on line %d: %w", parseErr.StartLine, err)
			}
			return nil, fmt.Errorf("reading after line %d: %w", lastLine, err)
		}
		lastLine, _ = reader.FieldPos(len(record) - 1)
		rows = append(rows, record)
	}

	return rows, nil
}
