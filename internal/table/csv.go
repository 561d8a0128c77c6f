package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// ReadOptions configures file loading.
type ReadOptions struct {
	// Delimiter is the CSV field separator. Zero means comma.
	// Ignored for XLSX inputs.
	Delimiter rune
}

// ReadFile loads a tabular file into a Table. The format is picked by
// extension: .xlsx goes through excelize, everything else is parsed as
// delimited text.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, clierrors.NewFileNotFound(path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path, opts.Delimiter)
}

func readCSV(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		// Not a malformed-input problem; the OS error (permissions and
		// the like) surfaces as-is and maps to the system exit code.
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if delimiter == 0 {
		delimiter = ','
	}

	r := csv.NewReader(f)
	r.Comma = delimiter
	// Row width is enforced against the header below, with padding for
	// short rows, so the reader must not enforce it per-record.
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, clierrors.NewParseError(path, pe.Line, pe.Err)
			}
			return nil, clierrors.NewParseError(path, 0, err)
		}
		records = append(records, record)
	}

	return fromRecords(path, records)
}

// fromRecords builds a Table from raw records. The first record is the
// header; its cells are whitespace-trimmed and a UTF-8 BOM on the first
// cell is stripped (files exported from spreadsheet tools often carry one).
func fromRecords(path string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, clierrors.NewParseError(path, 0, fmt.Errorf("missing header row"))
	}

	header := records[0]
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		name := strings.TrimSpace(cell)
		if name == "" {
			return nil, clierrors.NewParseError(path, 1, fmt.Errorf("empty column name at position %d", i+1))
		}
		if prev, dup := seen[name]; dup {
			return nil, clierrors.NewParseError(path, 1, fmt.Errorf("duplicate column %q at positions %d and %d", name, prev+1, i+1))
		}
		seen[name] = i
		columns[i] = name
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) > len(columns) {
			return nil, clierrors.NewParseError(path, line, fmt.Errorf("row has %d fields, header has %d", len(record), len(columns)))
		}
		row := make(Row, len(columns))
		for j, col := range columns {
			if j < len(record) {
				row[col] = record[j]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Path: path, Columns: columns, Rows: rows}, nil
}
