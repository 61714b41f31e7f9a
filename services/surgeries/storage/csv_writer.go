package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gpfinder-backend/services/surgeries"
)

// CSVWriter writes the merged table to a single CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the file at the given path and writes
// the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(surgeries.MergedColumns()); err != nil {
		f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

func (c *CSVWriter) Write(rows []surgeries.MergedRow) error {
	for _, row := range rows {
		if err := c.writer.Write(row.Record()); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	c.writer.Flush()
	return c.writer.Error()
}

func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
