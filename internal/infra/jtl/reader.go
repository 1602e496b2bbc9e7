// Package jtl reads JMeter JTL result logs.
package jtl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/loadlens/loadlens/internal/domain/sample"
)

// ErrSourceUnavailable is returned when the result source cannot be read
// at all. Unlike per-row malformation, this is fatal.
var ErrSourceUnavailable = errors.New("result source unavailable")

// ReadFile reads all rows from a JTL CSV file.
func ReadFile(path string) ([]sample.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Read reads raw rows from r. JTL files have no header row and a
// variable field count, so every line is treated as data. Lines the CSV
// parser rejects are skipped, the same silent-drop policy the normalizer
// applies to unparseable fields. I/O errors abort the read.
func Read(r io.Reader) ([]sample.Raw, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []sample.Raw
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		rows = append(rows, sample.Raw(record))
	}

	return rows, nil
}
