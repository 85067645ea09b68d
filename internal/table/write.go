package table

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"
)

// Write serializes the table and atomically replaces the destination file.
// The output format follows the destination's extension.
func Write(t *Table, path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatCSV:
		data, err = marshalCSV(t)
	case FormatXLSX:
		data, err = marshalXLSX(t)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func marshalCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("encoding CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encoding CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalXLSX(t *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, t.Headers); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, num int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, num)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", num, err)
	}
	return nil
}
