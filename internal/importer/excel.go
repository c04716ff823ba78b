// Package importer parses product item spreadsheets for bulk import.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	headerRowIndex = 1 // Excel rows are 1-based, header is row 1

	maxFamilyLength    = 255
	maxTradeNameLength = 255
	maxUOMLength       = 50
	maxPackingLength   = 255

	// MaxRows bounds a single upload.
	MaxRows = 5000
)

// Column keys recognised in the header row.
const (
	colFamily    = "family"
	colTradeName = "trade_name"
	colUOM       = "uom"
	colPacking   = "packing"
)

var headerAliases = map[string]string{
	"family":                colFamily,
	"product family":        colFamily,
	"trade name":            colTradeName,
	"trade_name":            colTradeName,
	"tradename":             colTradeName,
	"chemical":              colTradeName,
	"chemical / trade name": colTradeName,
	"chemical/trade name":   colTradeName,
	"uom":                   colUOM,
	"unit of measure":       colUOM,
	"unit":                  colUOM,
	"packing":               colPacking,
	"packaging":             colPacking,
}

var (
	// ErrNoSheets is returned for a workbook without worksheets.
	ErrNoSheets = errors.New("workbook has no sheets")
	// ErrMissingColumns is returned when the header lacks family or trade name.
	ErrMissingColumns = errors.New("header row must contain family and trade name columns")
	// ErrTooManyRows is returned when the sheet exceeds MaxRows data rows.
	ErrTooManyRows = fmt.Errorf("spreadsheet exceeds %d rows", MaxRows)
)

// ItemRow is one valid data row.
type ItemRow struct {
	Row       int // Excel row number (for error reporting)
	Family    string
	TradeName string
	UOM       string
	Packing   string
}

// Values returns the product_items column values for the row.
func (r ItemRow) Values(displayOrder int) map[string]any {
	return map[string]any{
		"family":        r.Family,
		"trade_name":    r.TradeName,
		"uom":           r.UOM,
		"packing":       r.Packing,
		"display_order": displayOrder,
	}
}

// ImportError represents a validation error for a specific row.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Result is the outcome of parsing a workbook.
type Result struct {
	Rows   []ItemRow
	Errors []ImportError
}

// ValidateRow returns an error message or "".
func ValidateRow(row ItemRow) string {
	switch {
	case row.Family == "":
		return "family is required"
	case row.TradeName == "":
		return "trade name is required"
	case utf8.RuneCountInString(row.Family) > maxFamilyLength:
		return fmt.Sprintf("family must be at most %d characters", maxFamilyLength)
	case utf8.RuneCountInString(row.TradeName) > maxTradeNameLength:
		return fmt.Sprintf("trade name must be at most %d characters", maxTradeNameLength)
	case utf8.RuneCountInString(row.UOM) > maxUOMLength:
		return fmt.Sprintf("uom must be at most %d characters", maxUOMLength)
	case utf8.RuneCountInString(row.Packing) > maxPackingLength:
		return fmt.Sprintf("packing must be at most %d characters", maxPackingLength)
	}
	return ""
}

// ParseItems reads the first worksheet of an .xlsx workbook. Blank rows
// are skipped; invalid rows are reported in Result.Errors and left out of
// Result.Rows.
func ParseItems(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < headerRowIndex {
		return &Result{}, nil
	}

	columns := mapHeader(rows[headerRowIndex-1])
	if _, ok := columns[colFamily]; !ok {
		return nil, ErrMissingColumns
	}
	if _, ok := columns[colTradeName]; !ok {
		return nil, ErrMissingColumns
	}

	data := rows[headerRowIndex:]
	if len(data) > MaxRows {
		return nil, ErrTooManyRows
	}

	result := &Result{Rows: make([]ItemRow, 0, len(data))}
	for i, cells := range data {
		row := ItemRow{
			Row:       i + headerRowIndex + 1,
			Family:    cell(cells, columns, colFamily),
			TradeName: cell(cells, columns, colTradeName),
			UOM:       cell(cells, columns, colUOM),
			Packing:   cell(cells, columns, colPacking),
		}
		if row == (ItemRow{Row: row.Row}) {
			continue
		}
		if msg := ValidateRow(row); msg != "" {
			result.Errors = append(result.Errors, ImportError{Row: row.Row, Error: msg})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key, ok := headerAliases[strings.ToLower(strings.Join(strings.Fields(h), " "))]
		if !ok {
			continue
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func cell(cells []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}
