// Package export serializes assembled reports to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pablolacamera1/ventaspanel/internal/report"
)

// Service writes reports to tabular files. The report itself stays a
// pure data structure; all I/O happens here.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Write serializes the report as CSV: one header row with the type's
// column labels, then one record per row in assembly order.
func (s *Service) Write(w io.Writer, r *report.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(r.Type.Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, 0, len(r.Type.Columns()))

	for _, row := range r.Rows {
		record = record[:0]
		for _, f := range row {
			record = append(record, formatValue(f.Value))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// WriteFile writes the report into dir under its own file-name token
// and returns the full path.
func (s *Service) WriteFile(dir string, r *report.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, r.Filename()+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := s.Write(f, r); err != nil {
		return "", err
	}

	return path, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
