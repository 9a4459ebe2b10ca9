package weather

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseRecords reads one weather file as comma-delimited text and returns its
// rows in file order, each keyed by the header. The header's first column is
// renamed to DayKey regardless of what the file calls it, and header names are
// whitespace-trimmed. Ragged rows are tolerated: short rows are padded with
// empty cells and long rows truncated to the header width.
func ParseRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = DayKey

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
