// Package spreadsheet reads front/back pairs from uploaded .xlsx and .csv
// files. The first column is the front, the second the back; further
// columns are ignored. A leading header row naming the columns is skipped.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is a supported upload format.
type Format string

// Supported formats
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Row is one front/back pair as read from a file. Cells are trimmed; a
// missing cell reads as empty.
type Row struct {
	Front string
	Back  string
}

// Blank reports whether either side is empty.
func (r Row) Blank() bool {
	return r.Front == "" || r.Back == ""
}

// FormatFromName picks the format from a file name's extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) ([]Row, error) {
	switch format {
	case FormatXLSX:
		return ReadXLSX(r)
	case FormatCSV:
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadXLSX reads rows from the first sheet of a workbook.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []Row{}, nil
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return toRows(cells), nil
}

// ReadCSV reads comma-separated rows. Rows may have any number of fields.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var cells [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		cells = append(cells, record)
	}
	if len(cells) > 0 && len(cells[0]) > 0 {
		cells[0][0] = strings.TrimPrefix(cells[0][0], "\ufeff")
	}
	return toRows(cells), nil
}

func toRows(cells [][]string) []Row {
	rows := make([]Row, 0, len(cells))
	for i, record := range cells {
		row := Row{Front: cell(record, 0), Back: cell(record, 1)}
		if i == 0 && isHeader(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isHeader(r Row) bool {
	return strings.EqualFold(r.Front, "front") && strings.EqualFold(r.Back, "back")
}
