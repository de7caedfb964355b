// Package csvio frames poll records as CSV: a header-keyed reader and an
// atomic writer.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/pollnorm-cli/internal/poll"
)

// SniffDelimiter guesses the cell delimiter from the filename; a .tsv
// extension means tab, everything else comma.
func SniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// ReadRecords loads a UTF-8 CSV file into its header and one Record per
// data row. Rows shorter than the header leave the trailing columns
// absent from the record; cells beyond the header are dropped. An empty
// file yields a nil header and no rows.
func ReadRecords(path string, delim rune) ([]string, []poll.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if delim != 0 {
		r.Comma = delim
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)

	var rows []poll.Record
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		rec := make(poll.Record, len(header))
		for i, name := range header {
			if i < len(cells) {
				rec[name] = cells[i]
			}
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

// WriteRecords writes the rows under the given column order, taking only
// schema columns from each record (absent ones become empty cells). The
// CSV is built in a temp file next to path and renamed into place, so a
// failed run never replaces an existing output with a truncated one.
func WriteRecords(path string, fields []string, rows []poll.Record) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(fields)
	cells := make([]string, len(fields))
	for _, rec := range rows {
		if writeErr != nil {
			break
		}
		for i, name := range fields {
			cells[i] = rec.Get(name)
		}
		writeErr = w.Write(cells)
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if err := f.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write csv: %w", writeErr)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
