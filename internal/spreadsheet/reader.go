package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for payloads that are neither xlsx nor csv
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format, expected .xlsx or .csv")

var zipMagic = []byte("PK\x03\x04")

// ReadFile reads the rows of the first sheet of the workbook at path
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, filepath.Base(path))
}

// Read reads the rows of an uploaded workbook. The filename extension picks
// the format when it is known, otherwise the content is sniffed.
func Read(r io.Reader, filename string) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	case ".xls":
		return nil, ErrUnsupportedFormat
	}

	if bytes.HasPrefix(data, zipMagic) {
		return readXLSX(data)
	}
	if utf8.Valid(data) {
		return readCSV(data)
	}
	return nil, ErrUnsupportedFormat
}

func readXLSX(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("excel file has no sheets")
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return toRows(records), nil
}

func readCSV(data []byte) ([]Row, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	return toRows(records), nil
}

// toRows maps records to header-keyed rows. The first non-blank record is the
// header; blank records are skipped; the first of duplicated headers wins.
func toRows(records [][]string) []Row {
	headerIdx := -1
	for i, rec := range records {
		if !isBlank(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return []Row{}
	}

	header := make([]Column, len(records[headerIdx]))
	seen := map[Column]bool{}
	for i, name := range records[headerIdx] {
		col := Column(strings.TrimSpace(name))
		if col == "" || seen[col] {
			continue
		}
		seen[col] = true
		header[i] = col
	}

	rows := make([]Row, 0, len(records)-headerIdx-1)
	for i := headerIdx + 1; i < len(records); i++ {
		rec := records[i]
		if isBlank(rec) {
			continue
		}

		cells := make(map[Column]string, len(header))
		for j, col := range header {
			if col == "" || j >= len(rec) || rec[j] == "" {
				continue
			}
			cells[col] = rec[j]
		}
		rows = append(rows, NewRow(i+1, cells))
	}
	return rows
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
